package service

import (
	"github.com/akarimov/study-keeper/internal/adapter"
	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/connectivity"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/store"
)

// ClientServices bundles every client-side service behind one wiring point.
// There is deliberately no package-level instance: the application
// constructs one and passes it down, and tests construct as many as they
// need.
type ClientServices struct {
	Session   ClientSessionService
	Study     ClientStudyService
	Community ClientCommunityService
	Refresh   ClientRefreshJob
}

// NewClientServices wires the client service layer from its collaborators.
func NewClientServices(slots store.SlotStore, srvAdapter adapter.ServerAdapter, oracle connectivity.Oracle, adapterCfg config.ClientAdapter, log *logger.Logger) *ClientServices {
	core := newSyncCore(slots, srvAdapter, oracle, log)

	session := NewClientSessionService(core)
	study := NewClientStudyService(core)
	community := NewClientCommunityService(core, adapterCfg.CommunityTimeout)

	return &ClientServices{
		Session:   session,
		Study:     study,
		Community: community,
		Refresh:   NewClientRefreshJob(session, study, community, log),
	}
}
