package quote

import (
	"context"
	"fmt"
	"time"

	"movelink/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService manages the lifecycle of a stateful quote session.
type SessionService interface {
	Initiate(ctx context.Context, userName string) (*models.QuoteDraft, error)
	Get(ctx context.Context, sessionID string) (*models.QuoteDraft, error)
	Apply(ctx context.Context, sessionID string, action Action) (*models.QuoteDraft, error)
	Vehicles(ctx context.Context, sessionID string) ([]VehiclePick, CargoSignal, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingExport, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService on top of a SessionStore.
type DefaultSessionService struct {
	Store SessionStore
	// ResetDelay is how long a delivery back-transition keeps the draft
	// intact before clearing it (the UI's exit animation window).
	ResetDelay time.Duration
	Logger     *zap.Logger
}

func NewSessionService(store SessionStore, resetDelay time.Duration, logger *zap.Logger) *DefaultSessionService {
	return &DefaultSessionService{
		Store:      store,
		ResetDelay: resetDelay,
		Logger:     logger,
	}
}

// Initiate creates a new session with an empty draft and stores it.
func (s *DefaultSessionService) Initiate(ctx context.Context, userName string) (*models.QuoteDraft, error) {
	draft := models.NewQuoteDraft(uuid.New().String(), userName)
	if err := s.Store.Set(ctx, draft.SessionID, &draft); err != nil {
		return nil, fmt.Errorf("failed to store quote session: %w", err)
	}
	return &draft, nil
}

// Get returns the current draft snapshot.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.QuoteDraft, error) {
	return s.Store.Get(ctx, sessionID)
}

// Apply loads the draft, runs the action through the reducer and stores the
// successor. A FlowError leaves the stored draft untouched. A delivery
// back-transition is stored flagged, then finalized after ResetDelay so
// reads during the window still see the full draft.
func (s *DefaultSessionService) Apply(ctx context.Context, sessionID string, action Action) (*models.QuoteDraft, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	alreadyAnimating := draft.AnimatingReset

	next, err := Apply(*draft, action)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, sessionID, &next); err != nil {
		return nil, fmt.Errorf("failed to update quote session: %w", err)
	}

	if action.Kind == ActionBack && next.AnimatingReset && !alreadyAnimating {
		s.scheduleReset(sessionID)
	}

	return &next, nil
}

// scheduleReset completes a delivery back-transition once the exit delay
// has elapsed. The draft must not clear before then.
func (s *DefaultSessionService) scheduleReset(sessionID string) {
	time.AfterFunc(s.ResetDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		draft, err := s.Store.Get(ctx, sessionID)
		if err != nil {
			// Session cancelled or expired during the window; nothing to clear.
			return
		}
		next, err := Apply(*draft, Action{Kind: actionFinalizeReset})
		if err != nil {
			return
		}
		if err := s.Store.Set(ctx, sessionID, &next); err != nil {
			s.Logger.Error("failed to finalize delivery reset", zap.String("sessionID", sessionID), zap.Error(err))
		}
	})
}

// Vehicles computes the current recommendation for the session.
func (s *DefaultSessionService) Vehicles(ctx context.Context, sessionID string) ([]VehiclePick, CargoSignal, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, CargoSignal{}, err
	}
	signal := DeriveCargoSignal(*draft)
	return Recommend(draft.Trip, signal), signal, nil
}

// Confirm finalizes the session: only legal at the summary step. It builds
// the export payload for the checkout collaborator, deletes the session
// and returns the payload.
func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingExport, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepSummary {
		return nil, NewFlowError("wrongStep", "the draft is not ready to submit")
	}

	export := &models.BookingExport{
		SessionID:           draft.SessionID,
		UserName:            draft.UserName,
		Service:             draft.Service,
		CargoItems:          draft.Cargo.AllItems(),
		Pickup:              draft.Pickup,
		Dropoff:             draft.Dropoff,
		PreferredPickupTime: draft.PreferredPickupTime,
		DistanceMeters:      draft.DistanceMeters,
		Trip:                draft.Trip,
		Vehicle:             draft.Vehicle,
		ConfirmedAt:         time.Now(),
	}
	if draft.Service == models.ServiceRelocation {
		rel := draft.Relocation
		export.Relocation = &rel
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear quote session: %w", err)
	}
	s.Logger.Info("quote confirmed",
		zap.String("sessionID", sessionID),
		zap.String("service", string(export.Service)),
		zap.String("vehicle", string(export.Vehicle)),
	)
	return export, nil
}

// Cancel allows the client to explicitly abandon a quote session.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel quote session: %w", err)
	}
	return nil
}
