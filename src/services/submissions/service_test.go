package submissions

import (
	"context"
	"testing"

	"Backend-GovSeva/src/models"
	"Backend-GovSeva/src/services/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore backs the pipeline with in-memory state and counts every write so
// tests can prove that failed submits persist nothing.
type fakeStore struct {
	service *models.Service
	balance float64

	submissions []*models.Submission
	debitCalls  int
	statuses    map[primitive.ObjectID]string
	finalDocs   map[primitive.ObjectID]string
}

func newFakeStore(svc *models.Service, balance float64) *fakeStore {
	return &fakeStore{
		service:   svc,
		balance:   balance,
		statuses:  map[primitive.ObjectID]string{},
		finalDocs: map[primitive.ObjectID]string{},
	}
}

func (f *fakeStore) ServiceByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeStore) Balance(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	return f.balance, nil
}

func (f *fakeStore) DebitAndCreate(ctx context.Context, userID primitive.ObjectID, price float64, sub *models.Submission) error {
	f.debitCalls++
	f.balance -= price
	f.submissions = append(f.submissions, sub)
	f.statuses[sub.ID] = sub.Status
	return nil
}

func (f *fakeStore) SubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			copied := *s
			copied.Status = f.statuses[id]
			return &copied, nil
		}
	}
	return nil, ErrSubmissionNotFound
}

func (f *fakeStore) ListByUserAndService(ctx context.Context, userID, serviceID primitive.ObjectID) ([]models.Submission, error) {
	out := []models.Submission{}
	for _, s := range f.submissions {
		if s.UserID == userID && s.ServiceID == serviceID {
			copied := *s
			copied.Status = f.statuses[s.ID]
			out = append(out, copied)
		}
	}
	return out, nil
}

func (f *fakeStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeStore) SetFinalDocument(ctx context.Context, id primitive.ObjectID, path string) error {
	f.finalDocs[id] = path
	return nil
}

func testService(price float64, fields []models.FormField) *models.Service {
	return &models.Service{
		ID:     primitive.NewObjectID(),
		Name:   "Income Certificate",
		Price:  price,
		Fields: fields,
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	fields := []models.FormField{
		{ID: "name", Label: "Full Name", Type: models.FieldTypeText, Required: true},
	}

	t.Run("TestSuccessDebitsExactlyPrice", func(t *testing.T) {
		store := newFakeStore(testService(500, fields), 500)
		svc := NewService(store)

		sub, err := svc.Submit(ctx, userID, store.service.ID, map[string]string{"name": "Asha"}, "10.0.0.1")

		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, sub.Status)
		assert.Equal(t, userID, sub.UserID)
		assert.Equal(t, "10.0.0.1", sub.SubmittedIP)
		assert.Equal(t, 1, store.debitCalls)
		assert.Equal(t, 0.0, store.balance)
		assert.Len(t, store.submissions, 1)
	})

	t.Run("TestInsufficientFundsPersistsNothing", func(t *testing.T) {
		store := newFakeStore(testService(500, fields), 300)
		svc := NewService(store)

		_, err := svc.Submit(ctx, userID, store.service.ID, map[string]string{"name": "Asha"}, "")

		var insufficient *ErrInsufficientFunds
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 200.0, insufficient.Shortfall)
		assert.Equal(t, 300.0, insufficient.Balance)
		assert.Equal(t, 500.0, insufficient.Price)

		assert.Equal(t, 0, store.debitCalls)
		assert.Empty(t, store.submissions)
		assert.Equal(t, 300.0, store.balance)
	})

	t.Run("TestValidationFailurePersistsNothing", func(t *testing.T) {
		store := newFakeStore(testService(100, fields), 1000)
		svc := NewService(store)

		_, err := svc.Submit(ctx, userID, store.service.ID, map[string]string{"name": "  "}, "")

		var verr *forms.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.FieldID)
		assert.Equal(t, 0, store.debitCalls)
		assert.Empty(t, store.submissions)
	})

	t.Run("TestUnknownService", func(t *testing.T) {
		store := newFakeStore(testService(100, fields), 1000)
		svc := NewService(store)

		_, err := svc.Submit(ctx, userID, primitive.NewObjectID(), map[string]string{"name": "Asha"}, "")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("TestFreeServiceWithZeroBalance", func(t *testing.T) {
		store := newFakeStore(testService(0, fields), 0)
		svc := NewService(store)

		sub, err := svc.Submit(ctx, userID, store.service.ID, map[string]string{"name": "Asha"}, "")

		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, sub.Status)
		assert.Equal(t, 0.0, store.balance)
	})

	t.Run("TestDoubleSubmitChargesTwice", func(t *testing.T) {
		store := newFakeStore(testService(200, fields), 500)
		svc := NewService(store)
		data := map[string]string{"name": "Asha"}

		_, err := svc.Submit(ctx, userID, store.service.ID, data, "")
		require.NoError(t, err)
		_, err = svc.Submit(ctx, userID, store.service.ID, data, "")
		require.NoError(t, err)

		assert.Equal(t, 2, store.debitCalls)
		assert.Equal(t, 100.0, store.balance)
		assert.Len(t, store.submissions, 2)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	fields := []models.FormField{}

	submit := func(t *testing.T, store *fakeStore, svc *Service) *models.Submission {
		sub, err := svc.Submit(ctx, userID, store.service.ID, map[string]string{}, "")
		require.NoError(t, err)
		return sub
	}

	t.Run("TestLifecycleGraph", func(t *testing.T) {
		allowed := map[[2]string]bool{
			{models.StatusPending, models.StatusApproved}: true,
			{models.StatusPending, models.StatusRejected}: true,
			{models.StatusApproved, models.StatusPending}: true,
			{models.StatusRejected, models.StatusPending}: true,
		}
		statuses := []string{models.StatusPending, models.StatusApproved, models.StatusRejected}

		for _, from := range statuses {
			for _, to := range statuses {
				store := newFakeStore(testService(0, fields), 0)
				svc := NewService(store)
				sub := submit(t, store, svc)
				store.statuses[sub.ID] = from

				_, err := svc.UpdateStatus(ctx, sub.ID, to)
				if allowed[[2]string{from, to}] {
					assert.NoError(t, err, "%s -> %s should be allowed", from, to)
				} else {
					var invalid *ErrInvalidTransition
					assert.ErrorAs(t, err, &invalid, "%s -> %s should be refused", from, to)
				}
			}
		}
	})

	t.Run("TestApproveThenRevertThenReject", func(t *testing.T) {
		store := newFakeStore(testService(0, fields), 0)
		svc := NewService(store)
		sub := submit(t, store, svc)

		updated, err := svc.UpdateStatus(ctx, sub.ID, models.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, updated.Status)

		// approved never flips straight to rejected
		_, err = svc.UpdateStatus(ctx, sub.ID, models.StatusRejected)
		var invalid *ErrInvalidTransition
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, models.StatusApproved, invalid.From)

		_, err = svc.UpdateStatus(ctx, sub.ID, models.StatusPending)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, sub.ID, models.StatusRejected)
		require.NoError(t, err)
	})

	t.Run("TestUnknownSubmission", func(t *testing.T) {
		store := newFakeStore(testService(0, fields), 0)
		svc := NewService(store)

		_, err := svc.UpdateStatus(ctx, primitive.NewObjectID(), models.StatusApproved)
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})
}

func TestAttachFinalDocument(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("TestAttachRegardlessOfStatus", func(t *testing.T) {
		store := newFakeStore(testService(0, nil), 0)
		svc := NewService(store)
		sub, err := svc.Submit(ctx, userID, store.service.ID, map[string]string{}, "")
		require.NoError(t, err)

		// still pending; attachment must not require approval first
		err = svc.AttachFinalDocument(ctx, sub.ID, "app_x_1.pdf")
		require.NoError(t, err)
		assert.Equal(t, "app_x_1.pdf", store.finalDocs[sub.ID])

		got, err := svc.GetByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, got.Status)
	})

	t.Run("TestUnknownSubmission", func(t *testing.T) {
		store := newFakeStore(testService(0, nil), 0)
		svc := NewService(store)
		err := svc.AttachFinalDocument(ctx, primitive.NewObjectID(), "x.pdf")
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	otherUser := primitive.NewObjectID()

	store := newFakeStore(testService(0, nil), 0)
	svc := NewService(store)

	_, err := svc.Submit(ctx, userID, store.service.ID, map[string]string{}, "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, otherUser, store.service.ID, map[string]string{}, "")
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, userID, store.service.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, userID, mine[0].UserID)
}
