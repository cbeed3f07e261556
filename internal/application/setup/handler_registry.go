package setup

import (
	"github.com/andrescamacho/starfront-go/internal/application/common"
	fleetQueries "github.com/andrescamacho/starfront-go/internal/application/fleet/queries"
	ledgerQueries "github.com/andrescamacho/starfront-go/internal/application/ledger/queries"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	turnCommands "github.com/andrescamacho/starfront-go/internal/application/turn/commands"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	session         *turn.Session
	transactionRepo ledger.TransactionRepository
	shipRepo        ship.Repository
	snapshotEvery   int
}

// NewHandlerRegistry creates a new handler registry. Either repository may
// be nil, which disables the handlers that need it.
func NewHandlerRegistry(
	session *turn.Session,
	transactionRepo ledger.TransactionRepository,
	shipRepo ship.Repository,
	snapshotEvery int,
) *HandlerRegistry {
	return &HandlerRegistry{
		session:         session,
		transactionRepo: transactionRepo,
		shipRepo:        shipRepo,
		snapshotEvery:   snapshotEvery,
	}
}

// RegisterAll registers every handler group with the mediator
func (r *HandlerRegistry) RegisterAll(m common.Mediator) error {
	if err := r.RegisterTurnHandlers(m); err != nil {
		return err
	}
	if err := r.RegisterFleetHandlers(m); err != nil {
		return err
	}
	return r.RegisterLedgerHandlers(m)
}

// RegisterTurnHandlers registers the turn command handlers
//
// This method registers:
//   - AdvanceTurnCommand → AdvanceTurnHandler
//   - RunSimulationCommand → RunSimulationHandler (dispatches AdvanceTurnCommand back through m)
//   - PerformActionCommand → PerformActionHandler
//   - ElectLeadersCommand → ElectLeadersHandler
//   - SaveSnapshotCommand → SaveSnapshotHandler (only with a ship repository)
func (r *HandlerRegistry) RegisterTurnHandlers(m common.Mediator) error {
	advance := turnCommands.NewAdvanceTurnHandler(r.session, r.transactionRepo, r.shipRepo, r.snapshotEvery)
	if err := common.RegisterHandler[*turnCommands.AdvanceTurnCommand](m, advance); err != nil {
		return err
	}
	if err := common.RegisterHandler[*turnCommands.RunSimulationCommand](m, turnCommands.NewRunSimulationHandler(m)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*turnCommands.PerformActionCommand](m, turnCommands.NewPerformActionHandler(r.session)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*turnCommands.ElectLeadersCommand](m, turnCommands.NewElectLeadersHandler(r.session)); err != nil {
		return err
	}
	if r.shipRepo == nil {
		return nil
	}
	return common.RegisterHandler[*turnCommands.SaveSnapshotCommand](m, turnCommands.NewSaveSnapshotHandler(r.session, r.shipRepo))
}

// RegisterFleetHandlers registers the ship queries
func (r *HandlerRegistry) RegisterFleetHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[*fleetQueries.ListShipsQuery](m, fleetQueries.NewListShipsHandler(r.session)); err != nil {
		return err
	}
	return common.RegisterHandler[*fleetQueries.GetShipQuery](m, fleetQueries.NewGetShipHandler(r.session))
}

// RegisterLedgerHandlers registers the transaction query. Without a
// transaction repository there is nothing to query.
func (r *HandlerRegistry) RegisterLedgerHandlers(m common.Mediator) error {
	if r.transactionRepo == nil {
		return nil
	}
	return common.RegisterHandler[*ledgerQueries.GetTransactionsQuery](m, ledgerQueries.NewGetTransactionsHandler(r.transactionRepo))
}
