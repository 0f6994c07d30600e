package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/domain/user"
	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/pkg/config"
	"shiftboard/internal/pkg/errs"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound     = errs.New("change request not found")
	ErrOfferNotFound       = errs.New("offer not found")
	ErrEntryNotFound       = errs.New("schedule entry not found")
	ErrShiftTypeNotFound   = errs.New("shift type not found")
	ErrNoEmployeeProfile   = errs.New("user has no employee profile")
	ErrActiveRequestExists = errs.New("entry already has an active change request")
	ErrRequestExpired      = errs.New("change request has expired")
	ErrConcurrentUpdate    = errs.New("request was modified concurrently")
	ErrNotParticipant      = errs.New("actor is not a participant of this request")
	ErrAlreadyApproved     = errs.New("role already has an active approval")
	ErrForbiddenApproval   = errs.New("actor may not approve this request")
)

// Actor identifies who is performing a command. Worker-side operations
// require an employee profile; admin-side ones only require the role.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type CreateChangeInput struct {
	ScheduleEntryID   uuid.UUID
	ChangeType        shiftchange.ChangeType
	TargetShiftTypeID *uuid.UUID
	Reason            *string
	Urgency           shiftchange.Urgency
}

type SubmitOfferInput struct {
	Conditions *string
}

type DecisionInput struct {
	Notes *string
}

type ShiftChangeCommands interface {
	Create(ctx context.Context, input CreateChangeInput, actor Actor) (uuid.UUID, error)
	SubmitOffer(ctx context.Context, requestID uuid.UUID, input SubmitOfferInput, actor Actor) (uuid.UUID, error)
	WithdrawOffer(ctx context.Context, requestID, offerID uuid.UUID, actor Actor) error
	Cancel(ctx context.Context, requestID uuid.UUID, actor Actor) error
	SelectOffer(ctx context.Context, requestID, offerID uuid.UUID, actor Actor) error
	Approve(ctx context.Context, requestID uuid.UUID, input DecisionInput, actor Actor) error
	Reject(ctx context.Context, requestID uuid.UUID, input DecisionInput, actor Actor) error
	ExpireStale(ctx context.Context) (int64, error)
}

type shiftChangeUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	cfg      config.ShiftConfig
}

func NewShiftChangeUseCase(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, cfg config.ShiftConfig) ShiftChangeCommands {
	return &shiftChangeUseCaseImpl{uow: uow, notifier: notifier, clock: clk, cfg: cfg}
}

func (uc *shiftChangeUseCaseImpl) Create(ctx context.Context, input CreateChangeInput, actor Actor) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		emp, derr := requireEmployee(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		entry, derr := tx.Reads().EntryByID(ctx, input.ScheduleEntryID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return derr
		}

		exists, derr := tx.Reads().LiveRequestExistsForEntry(ctx, input.ScheduleEntryID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrActiveRequestExists
		}

		var target *shiftchange.TargetShiftSpec
		if input.TargetShiftTypeID != nil {
			st, terr := tx.Reads().ShiftTypeByID(ctx, *input.TargetShiftTypeID)
			if terr != nil {
				if infra.IsKind(terr, infra.KindNotFound) {
					return ErrShiftTypeNotFound
				}
				return terr
			}
			target = &shiftchange.TargetShiftSpec{ID: st.ID, IsActive: st.IsActive}
		}

		req, derr := shiftchange.NewChangeRequest(emp.ID, *entry, input.ChangeType, target, input.Reason, input.Urgency, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.ChangeRequests().Create(ctx, tx.DB(), req)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *shiftChangeUseCaseImpl) SubmitOffer(ctx context.Context, requestID uuid.UUID, input SubmitOfferInput, actor Actor) (uuid.UUID, error) {
	var (
		createdID uuid.UUID
		pending   []shared.Notification
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending = pending[:0]

		emp, derr := requireEmployee(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		snap, derr := uc.liveRequest(ctx, tx, requestID)
		if derr != nil {
			return derr
		}

		offer, derr := shiftchange.NewCoverageOffer(requestID, emp.ID, snap.RequesterID, input.Conditions, uc.clock.Now())
		if derr != nil {
			return derr
		}

		next, derr := shiftchange.Transition(snap.Status, shiftchange.ActionSubmitOffer)
		if derr != nil {
			return derr
		}

		id, derr := tx.Offers().Create(ctx, tx.DB(), offer)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return shiftchange.ErrDuplicateOffer
			}
			return derr
		}
		createdID = id

		if next != snap.Status {
			if derr = uc.casStatus(ctx, tx, requestID, snap.Status, next); derr != nil {
				return derr
			}
		}

		n, derr := uc.notificationFor(ctx, tx, snap.RequesterID, shared.NotifyOfferReceived,
			"New coverage offer", "Someone offered to cover your shift.", requestID)
		if derr != nil {
			return derr
		}
		pending = append(pending, n)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	dispatch(ctx, uc.notifier, pending)
	return createdID, nil
}

func (uc *shiftChangeUseCaseImpl) WithdrawOffer(ctx context.Context, requestID, offerID uuid.UUID, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		emp, derr := requireEmployee(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		offerSnap, derr := tx.Reads().OfferByID(ctx, offerID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return derr
		}
		if offerSnap.RequestID != requestID {
			return shiftchange.ErrOfferMismatch
		}

		offer := shiftchange.ReconstructCoverageOffer(
			offerSnap.ID, offerSnap.RequestID, offerSnap.OffererID,
			offerSnap.Conditions, offerSnap.Status, offerSnap.OfferedAt,
		)
		if derr = offer.CanWithdraw(emp.ID); derr != nil {
			return derr
		}

		snap, derr := uc.liveRequest(ctx, tx, requestID)
		if derr != nil {
			return derr
		}

		count, derr := tx.Offers().CountByRequest(ctx, tx.DB(), requestID)
		if derr != nil {
			return derr
		}
		action := shiftchange.ActionWithdrawOffer
		if count <= 1 {
			action = shiftchange.ActionWithdrawLastOffer
		}

		next, derr := shiftchange.Transition(snap.Status, action)
		if derr != nil {
			return derr
		}

		if derr = tx.Offers().Delete(ctx, tx.DB(), offerID); derr != nil {
			return derr
		}
		if next != snap.Status {
			return uc.casStatus(ctx, tx, requestID, snap.Status, next)
		}
		return nil
	})
}

func (uc *shiftChangeUseCaseImpl) Cancel(ctx context.Context, requestID uuid.UUID, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		emp, derr := requireEmployee(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		snap, derr := uc.liveRequest(ctx, tx, requestID)
		if derr != nil {
			return derr
		}

		req := reconstructRequest(snap)
		if derr = req.CanCancel(emp.ID); derr != nil {
			return derr
		}

		next, derr := shiftchange.Transition(snap.Status, shiftchange.ActionCancel)
		if derr != nil {
			return derr
		}
		return uc.casStatus(ctx, tx, requestID, snap.Status, next)
	})
}

func (uc *shiftChangeUseCaseImpl) SelectOffer(ctx context.Context, requestID, offerID uuid.UUID, actor Actor) error {
	var pending []shared.Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending = pending[:0]

		emp, derr := requireEmployee(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		snap, derr := uc.liveRequest(ctx, tx, requestID)
		if derr != nil {
			return derr
		}
		if snap.RequesterID != emp.ID {
			return shiftchange.ErrNotRequester
		}

		offerSnap, derr := tx.Reads().OfferByID(ctx, offerID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return derr
		}
		if offerSnap.RequestID != requestID {
			return shiftchange.ErrOfferMismatch
		}
		if offerSnap.Status != shiftchange.OfferPending {
			return shiftchange.ErrOfferNotPending
		}

		next, derr := shiftchange.Transition(snap.Status, shiftchange.ActionSelectOffer)
		if derr != nil {
			return derr
		}
		if derr = uc.casStatus(ctx, tx, requestID, snap.Status, next); derr != nil {
			return derr
		}

		if derr = tx.Offers().MarkSelected(ctx, tx.DB(), offerID); derr != nil {
			return derr
		}

		entry, derr := tx.Reads().EntryByID(ctx, snap.ScheduleEntryID)
		if derr != nil {
			return derr
		}
		blob, derr := entry.Marshal()
		if derr != nil {
			return derr
		}
		if _, derr = tx.Results().Create(ctx, tx.DB(), requestID, &offerID, blob); derr != nil {
			return derr
		}

		// Selecting an offer is the requester's consent. Record it so the
		// approval gate only waits on the offerer and an admin.
		if derr = tx.Approvals().Append(ctx, tx.DB(), requestID, actor.UserID, shiftchange.RoleRequester, true); derr != nil {
			return derr
		}

		n, derr := uc.notificationFor(ctx, tx, offerSnap.OffererID, shared.NotifyOfferSelected,
			"Your offer was selected", "The requester picked your coverage offer. Approval is now pending.", requestID)
		if derr != nil {
			return derr
		}
		pending = append(pending, n)
		return nil
	})
	if err != nil {
		return err
	}
	dispatch(ctx, uc.notifier, pending)
	return nil
}

func (uc *shiftChangeUseCaseImpl) Approve(ctx context.Context, requestID uuid.UUID, input DecisionInput, actor Actor) error {
	var pending []shared.Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending = pending[:0]

		snap, derr := tx.Reads().RequestByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return derr
		}

		if snap.Status.AcceptsOffers() {
			return uc.adminResolve(ctx, tx, snap, input, actor, &pending)
		}

		if snap.Status != shiftchange.StatusAwaitingApproval {
			return shiftchange.ErrInvalidTransition
		}

		selected, derr := uc.selectedOffer(ctx, tx, requestID)
		if derr != nil {
			return derr
		}

		role, derr := uc.resolveApproverRole(ctx, tx, snap, selected, actor)
		if derr != nil {
			return derr
		}

		log, derr := tx.Reads().ApprovalsByRequest(ctx, requestID)
		if derr != nil {
			return derr
		}
		if log.ActiveByRole(role) {
			return ErrAlreadyApproved
		}

		if derr = tx.Approvals().Append(ctx, tx.DB(), requestID, actor.UserID, role, true); derr != nil {
			return derr
		}
		if role == shiftchange.RoleAdmin && input.Notes != nil {
			if derr = tx.ChangeRequests().SetAdminNotes(ctx, tx.DB(), requestID, *input.Notes); derr != nil {
				return derr
			}
		}

		log = append(log, shiftchange.Approval{Role: role, Approved: true})
		if !log.IsFullyApproved(shiftchange.RequiredRoles(selected != nil)) {
			return nil
		}

		next, derr := shiftchange.Transition(snap.Status, shiftchange.ActionComplete)
		if derr != nil {
			return derr
		}
		if derr = uc.casStatus(ctx, tx, requestID, snap.Status, next); derr != nil {
			return derr
		}
		if derr = uc.executeResult(ctx, tx, snap, selected); derr != nil {
			return derr
		}

		targets := []uuid.UUID{snap.RequesterID}
		if selected != nil {
			targets = append(targets, selected.OffererID)
		}
		for _, employeeID := range targets {
			n, nerr := uc.notificationFor(ctx, tx, employeeID, shared.NotifyChangeApproved,
				"Shift change approved", "The shift change was fully approved and executed.", requestID)
			if nerr != nil {
				return nerr
			}
			pending = append(pending, n)
		}
		return nil
	})
	if err != nil {
		return err
	}
	dispatch(ctx, uc.notifier, pending)
	return nil
}

// adminResolve completes an offer-less absence or swap directly from the
// negotiation phase. Coverage requests always go through offer selection.
func (uc *shiftChangeUseCaseImpl) adminResolve(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot, input DecisionInput, actor Actor, pending *[]shared.Notification) error {
	if !actor.Role.CanApproveChanges() {
		return ErrForbiddenApproval
	}
	if !snap.ChangeType.AdminResolvable() {
		return shiftchange.ErrInvalidTransition
	}
	if derr := uc.expireIfStale(ctx, tx, snap); derr != nil {
		return derr
	}

	next, derr := shiftchange.Transition(snap.Status, shiftchange.ActionAdminResolve)
	if derr != nil {
		return derr
	}
	if derr = uc.casStatus(ctx, tx, snap.ID, snap.Status, next); derr != nil {
		return derr
	}

	if derr = tx.Approvals().Append(ctx, tx.DB(), snap.ID, actor.UserID, shiftchange.RoleAdmin, true); derr != nil {
		return derr
	}
	if input.Notes != nil {
		if derr = tx.ChangeRequests().SetAdminNotes(ctx, tx.DB(), snap.ID, *input.Notes); derr != nil {
			return derr
		}
	}

	entry, derr := tx.Reads().EntryByID(ctx, snap.ScheduleEntryID)
	if derr != nil {
		return derr
	}
	blob, derr := entry.Marshal()
	if derr != nil {
		return derr
	}
	if _, derr = tx.Results().Create(ctx, tx.DB(), snap.ID, nil, blob); derr != nil {
		return derr
	}
	if derr = uc.executeResult(ctx, tx, snap, nil); derr != nil {
		return derr
	}

	n, derr := uc.notificationFor(ctx, tx, snap.RequesterID, shared.NotifyChangeApproved,
		"Shift change approved", "An admin approved and executed your request.", snap.ID)
	if derr != nil {
		return derr
	}
	*pending = append(*pending, n)
	return nil
}

func (uc *shiftChangeUseCaseImpl) Reject(ctx context.Context, requestID uuid.UUID, input DecisionInput, actor Actor) error {
	var pending []shared.Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending = pending[:0]

		snap, derr := tx.Reads().RequestByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return derr
		}

		var (
			role     shiftchange.ApproverRole
			selected *shared.OfferSnapshot
		)
		switch {
		case snap.Status.AcceptsOffers():
			if !actor.Role.CanApproveChanges() {
				return ErrForbiddenApproval
			}
			role = shiftchange.RoleAdmin
		case snap.Status == shiftchange.StatusAwaitingApproval:
			selected, derr = uc.selectedOffer(ctx, tx, requestID)
			if derr != nil {
				return derr
			}
			role, derr = uc.resolveApproverRole(ctx, tx, snap, selected, actor)
			if derr != nil {
				return derr
			}
			// Once an offer is selected only the offerer or an admin may
			// back out. The requester already consented by selecting.
			if role == shiftchange.RoleRequester {
				if !actor.Role.CanApproveChanges() {
					return ErrForbiddenApproval
				}
				role = shiftchange.RoleAdmin
			}
		default:
			return shiftchange.ErrInvalidTransition
		}

		next, derr := shiftchange.Transition(snap.Status, shiftchange.ActionReject)
		if derr != nil {
			return derr
		}
		if derr = tx.Approvals().Append(ctx, tx.DB(), requestID, actor.UserID, role, false); derr != nil {
			return derr
		}
		if role == shiftchange.RoleAdmin && input.Notes != nil {
			if derr = tx.ChangeRequests().SetAdminNotes(ctx, tx.DB(), requestID, *input.Notes); derr != nil {
				return derr
			}
		}
		if derr = uc.casStatus(ctx, tx, requestID, snap.Status, next); derr != nil {
			return derr
		}

		targets := []uuid.UUID{snap.RequesterID}
		if selected != nil {
			targets = append(targets, selected.OffererID)
		}
		for _, employeeID := range targets {
			n, nerr := uc.notificationFor(ctx, tx, employeeID, shared.NotifyChangeRejected,
				"Shift change rejected", "The shift change request was rejected.", requestID)
			if nerr != nil {
				return nerr
			}
			pending = append(pending, n)
		}
		return nil
	})
	if err != nil {
		return err
	}
	dispatch(ctx, uc.notifier, pending)
	return nil
}

// ExpireStale sweeps negotiating requests older than the validity window.
// Lazy per-request checks cover reads in between sweeps.
func (uc *shiftChangeUseCaseImpl) ExpireStale(ctx context.Context) (int64, error) {
	var expired int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cutoff := uc.clock.Now().Add(-uc.cfg.RequestValidityWindow)
		n, derr := tx.ChangeRequests().ExpireOlderThan(ctx, tx.DB(), cutoff)
		if derr != nil {
			return derr
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

func requireEmployee(ctx context.Context, tx shared.Tx, actor Actor) (*shared.EmployeeRef, error) {
	emp, err := tx.Reads().EmployeeByUser(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoEmployeeProfile
		}
		return nil, err
	}
	return emp, nil
}

// liveRequest loads a request for mutation and rejects it when the validity
// window has lapsed. The rejection rolls the transaction back; the row itself
// is moved to EXPIRED by the ExpireStale sweep.
func (uc *shiftChangeUseCaseImpl) liveRequest(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*shared.RequestSnapshot, error) {
	snap, err := tx.Reads().RequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if err = uc.expireIfStale(ctx, tx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (uc *shiftChangeUseCaseImpl) expireIfStale(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot) error {
	req := reconstructRequest(snap)
	if !req.HasExpired(uc.clock.Now(), uc.cfg.RequestValidityWindow) {
		return nil
	}
	next, err := shiftchange.Transition(snap.Status, shiftchange.ActionExpire)
	if err != nil {
		return err
	}
	if err = uc.casStatus(ctx, tx, snap.ID, snap.Status, next); err != nil {
		return err
	}
	return ErrRequestExpired
}

func (uc *shiftChangeUseCaseImpl) casStatus(ctx context.Context, tx shared.Tx, requestID uuid.UUID, from, to shiftchange.Status) error {
	ok, err := tx.ChangeRequests().UpdateStatus(ctx, tx.DB(), requestID, from, to)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConcurrentUpdate
	}
	return nil
}

func (uc *shiftChangeUseCaseImpl) selectedOffer(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*shared.OfferSnapshot, error) {
	offers, err := tx.Reads().OffersByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].Status == shiftchange.OfferSelected {
			return &offers[i], nil
		}
	}
	return nil, nil
}

func (uc *shiftChangeUseCaseImpl) resolveApproverRole(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot, selected *shared.OfferSnapshot, actor Actor) (shiftchange.ApproverRole, error) {
	emp, err := tx.Reads().EmployeeByUser(ctx, actor.UserID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return "", err
	}
	switch {
	case emp != nil && emp.ID == snap.RequesterID:
		return shiftchange.RoleRequester, nil
	case emp != nil && selected != nil && emp.ID == selected.OffererID:
		return shiftchange.RoleOfferer, nil
	case actor.Role.CanApproveChanges():
		return shiftchange.RoleAdmin, nil
	default:
		return "", ErrNotParticipant
	}
}

func (uc *shiftChangeUseCaseImpl) notificationFor(ctx context.Context, tx shared.Tx, employeeID uuid.UUID, kind, title, message string, requestID uuid.UUID) (shared.Notification, error) {
	userID, err := tx.Reads().UserIDByEmployee(ctx, employeeID)
	if err != nil {
		return shared.Notification{}, err
	}
	link := fmt.Sprintf("/changes/%s", requestID)
	return shared.Notification{
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
		Link:    &link,
	}, nil
}

// dispatch delivers notifications after the owning transaction committed.
// Delivery failures are logged and swallowed; the state transition stands.
func dispatch(ctx context.Context, notifier shared.Notifier, pending []shared.Notification) {
	for _, n := range pending {
		if err := notifier.Notify(ctx, n); err != nil {
			slog.Warn("failed to deliver notification", "kind", n.Kind, "user_id", n.UserID, "error", err)
		}
	}
}

func reconstructRequest(snap *shared.RequestSnapshot) *shiftchange.ChangeRequest {
	return shiftchange.ReconstructChangeRequest(
		snap.ID, snap.RequesterID, snap.ScheduleEntryID,
		snap.ChangeType, snap.TargetShiftTypeID,
		snap.Urgency, snap.Reason, snap.Status, snap.AdminNotes, snap.CreatedAt,
	)
}
