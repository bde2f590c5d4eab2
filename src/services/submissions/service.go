package submissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Backend-GovSeva/src/models"
	"Backend-GovSeva/src/services/forms"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrServiceNotFound = errors.New("service not found")
var ErrSubmissionNotFound = errors.New("submission not found")

// ErrInsufficientFunds reports a wallet balance lower than the service
// price, including the exact shortfall so the UI can offer a top-up.
type ErrInsufficientFunds struct {
	Balance   float64
	Price     float64
	Shortfall float64
}

func (e *ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient wallet balance: need %.2f more", e.Shortfall)
}

// ErrInvalidTransition reports a status change outside the lifecycle graph.
type ErrInvalidTransition struct {
	From string
	To   string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

// Store is the persistence boundary of the submission pipeline. DebitAndCreate
// must apply the wallet debit and the submission insert as one atomic unit:
// if either part fails neither may be visible.
type Store interface {
	ServiceByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	Balance(ctx context.Context, userID primitive.ObjectID) (float64, error)
	DebitAndCreate(ctx context.Context, userID primitive.ObjectID, price float64, sub *models.Submission) error
	SubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	ListByUserAndService(ctx context.Context, userID, serviceID primitive.ObjectID) ([]models.Submission, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	SetFinalDocument(ctx context.Context, id primitive.ObjectID, path string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// NewMongoService wires the pipeline to the live MongoDB collections.
func NewMongoService() *Service {
	return NewService(&mongoStore{})
}

// Submit validates the filled data against the service's form, checks
// affordability and persists the submission with status pending while
// debiting the wallet by the service price. Rapid double-submits are not
// deduplicated: each successful call charges and creates again.
func (s *Service) Submit(ctx context.Context, userID, serviceID primitive.ObjectID, data map[string]string, ip string) (*models.Submission, error) {
	svc, err := s.store.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if err := forms.ValidateSubmission(svc.Fields, data); err != nil {
		return nil, err
	}

	balance, err := s.store.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance < svc.Price {
		return nil, &ErrInsufficientFunds{
			Balance:   balance,
			Price:     svc.Price,
			Shortfall: svc.Price - balance,
		}
	}

	now := time.Now()
	sub := &models.Submission{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		ServiceID:   serviceID,
		Data:        data,
		Status:      models.StatusPending,
		SubmittedIP: ip,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.DebitAndCreate(ctx, userID, svc.Price, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// transitions is the full lifecycle graph: pending may be approved or
// rejected, and either outcome may be reverted back to pending.
var transitions = map[string][]string{
	models.StatusPending:  {models.StatusApproved, models.StatusRejected},
	models.StatusApproved: {models.StatusPending},
	models.StatusRejected: {models.StatusPending},
}

func canTransition(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies one lifecycle transition. It touches only the status
// field; document attachment is a separate, unordered action.
func (s *Service) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Submission, error) {
	sub, err := s.store.SubmissionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(sub.Status, status) {
		return nil, &ErrInvalidTransition{From: sub.Status, To: status}
	}
	if err := s.store.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	sub.Status = status
	return sub, nil
}

// AttachFinalDocument stores the final document path on a submission. The
// admin may do this before or after approving; no ordering is enforced.
func (s *Service) AttachFinalDocument(ctx context.Context, id primitive.ObjectID, path string) error {
	if _, err := s.store.SubmissionByID(ctx, id); err != nil {
		return err
	}
	return s.store.SetFinalDocument(ctx, id, path)
}

// ListForUser returns the user's submissions for one service, newest first.
func (s *Service) ListForUser(ctx context.Context, userID, serviceID primitive.ObjectID) ([]models.Submission, error) {
	return s.store.ListByUserAndService(ctx, userID, serviceID)
}

// GetByID returns one submission.
func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	return s.store.SubmissionByID(ctx, id)
}
