// Package branding holds product naming shared by pages and API messages.
package branding

// AppName is the user-facing product name.
const AppName = "Training Tracker"
