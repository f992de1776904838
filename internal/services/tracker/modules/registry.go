// Package modules lists the tracker feature modules.
package modules

import (
	module "github.com/louisbranch/trainingtracker/internal/services/tracker/module"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/modules/api"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/modules/dashboard"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/modules/public"
)

// Default returns the tracker modules in mount order.
func Default() []module.Module {
	return []module.Module{
		public.New(),
		api.New(),
		dashboard.New(),
	}
}
