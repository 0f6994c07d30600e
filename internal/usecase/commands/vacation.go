package commands

import (
	"context"
	"fmt"
	"time"

	"shiftboard/internal/domain/vacation"
	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/pkg/config"
	"shiftboard/internal/pkg/errs"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVacationNotFound  = errs.New("vacation request not found")
	ErrForbiddenDecision = errs.New("actor may not decide vacation requests")
)

type RequestVacationInput struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

type VacationCommands interface {
	Request(ctx context.Context, input RequestVacationInput, actor Actor) (uuid.UUID, error)
	Cancel(ctx context.Context, requestID uuid.UUID, actor Actor) error
	Decide(ctx context.Context, requestID uuid.UUID, approve bool, notes *string, actor Actor) error
}

type vacationUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	cfg      config.ShiftConfig
}

func NewVacationUseCase(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, cfg config.ShiftConfig) VacationCommands {
	return &vacationUseCaseImpl{uow: uow, notifier: notifier, clock: clk, cfg: cfg}
}

func (uc *vacationUseCaseImpl) Request(ctx context.Context, input RequestVacationInput, actor Actor) (uuid.UUID, error) {
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

		req, derr := vacation.NewRequest(emp.ID, input.StartDate, input.EndDate, input.Reason, uc.clock.Now())
		if derr != nil {
			return derr
		}

		// Balances are keyed by the start date's year and provisioned
		// lazily with the configured annual allowance.
		balance, derr := uc.balanceForUpdate(ctx, tx, emp.ID, input.StartDate.Year())
		if derr != nil {
			return derr
		}
		if derr = balance.ReservePending(req.TotalDays()); derr != nil {
			return derr
		}

		id, derr := tx.VacationRequests().Create(ctx, tx.DB(), req)
		if derr != nil {
			return derr
		}
		createdID = id

		if derr = tx.VacationBalances().UpdateCounters(ctx, tx.DB(), balance); derr != nil {
			return derr
		}

		adminIDs, derr := tx.Reads().AdminUserIDs(ctx)
		if derr != nil {
			return derr
		}
		link := fmt.Sprintf("/vacations/%s", id)
		for _, adminID := range adminIDs {
			pending = append(pending, shared.Notification{
				UserID:  adminID,
				Kind:    shared.NotifyVacationRequest,
				Title:   "New vacation request",
				Message: fmt.Sprintf("%s %s requested %d vacation day(s).", emp.FirstName, emp.LastName, req.TotalDays()),
				Link:    &link,
			})
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	dispatch(ctx, uc.notifier, pending)
	return createdID, nil
}

func (uc *vacationUseCaseImpl) Cancel(ctx context.Context, requestID uuid.UUID, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		emp, derr := requireEmployee(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		req, derr := uc.loadRequest(ctx, tx, requestID)
		if derr != nil {
			return derr
		}
		if derr = req.CanCancel(emp.ID); derr != nil {
			return derr
		}

		ok, derr := tx.VacationRequests().UpdateStatus(ctx, tx.DB(), requestID, vacation.StatusPending, vacation.StatusCancelled, nil)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrConcurrentUpdate
		}

		return uc.adjustBalance(ctx, tx, req, func(b *vacation.Balance) error {
			return b.ReleasePending(req.TotalDays())
		})
	})
}

func (uc *vacationUseCaseImpl) Decide(ctx context.Context, requestID uuid.UUID, approve bool, notes *string, actor Actor) error {
	var pending []shared.Notification
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending = pending[:0]

		if !actor.Role.CanApproveChanges() {
			return ErrForbiddenDecision
		}

		req, derr := uc.loadRequest(ctx, tx, requestID)
		if derr != nil {
			return derr
		}
		if derr = req.CanDecide(); derr != nil {
			return derr
		}

		to := vacation.StatusRejected
		if approve {
			to = vacation.StatusApproved
		}
		ok, derr := tx.VacationRequests().UpdateStatus(ctx, tx.DB(), requestID, vacation.StatusPending, to, notes)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrConcurrentUpdate
		}

		derr = uc.adjustBalance(ctx, tx, req, func(b *vacation.Balance) error {
			if approve {
				return b.CommitPending(req.TotalDays())
			}
			return b.ReleasePending(req.TotalDays())
		})
		if derr != nil {
			return derr
		}

		userID, derr := tx.Reads().UserIDByEmployee(ctx, req.EmployeeID())
		if derr != nil {
			return derr
		}
		kind, title, msg := shared.NotifyVacationRejected, "Vacation request rejected", "Your vacation request was rejected."
		if approve {
			kind, title, msg = shared.NotifyVacationApproved, "Vacation request approved", "Your vacation request was approved."
		}
		link := fmt.Sprintf("/vacations/%s", requestID)
		pending = append(pending, shared.Notification{UserID: userID, Kind: kind, Title: title, Message: msg, Link: &link})
		return nil
	})
	if err != nil {
		return err
	}
	dispatch(ctx, uc.notifier, pending)
	return nil
}

func (uc *vacationUseCaseImpl) loadRequest(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*vacation.Request, error) {
	req, err := tx.Reads().VacationRequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVacationNotFound
		}
		return nil, err
	}
	return req, nil
}

func (uc *vacationUseCaseImpl) balanceForUpdate(ctx context.Context, tx shared.Tx, employeeID uuid.UUID, year int) (*vacation.Balance, error) {
	balance, err := tx.Reads().BalanceForUpdate(ctx, employeeID, year)
	if err == nil {
		return balance, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	balance = vacation.NewBalance(employeeID, year, uc.cfg.DefaultVacationDays)
	if _, err = tx.VacationBalances().Create(ctx, tx.DB(), balance); err != nil {
		return nil, err
	}
	return balance, nil
}

func (uc *vacationUseCaseImpl) adjustBalance(ctx context.Context, tx shared.Tx, req *vacation.Request, mutate func(*vacation.Balance) error) error {
	balance, err := tx.Reads().BalanceForUpdate(ctx, req.EmployeeID(), req.StartDate().Year())
	if err != nil {
		return err
	}
	if err = mutate(balance); err != nil {
		return err
	}
	return tx.VacationBalances().UpdateCounters(ctx, tx.DB(), balance)
}
