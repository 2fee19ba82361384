package book

import (
	"context"
	"errors"
	"testing"

	"bookshelf/internal/cover"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func newTestService(t *testing.T) (*Service, *MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	return NewService(mockRepo, cover.NewSearchResolver(""), zap.NewNop()), mockRepo
}

func TestService_List_BackfillsMissingCovers(t *testing.T) {
	service, mockRepo := newTestService(t)
	ctx := context.Background()

	books := []Book{
		{ID: 1, Title: "Celestial Sins", CoverImage: strPtr("https://example.com/c.jpg")},
		{ID: 2, Title: "Eternal Night"},
		{ID: 3, Title: "Pandora", CoverImage: strPtr("")},
	}

	gomock.InOrder(
		mockRepo.EXPECT().ListAll(ctx, OrderTitle).Return(books, nil),
		mockRepo.EXPECT().SetCoverImage(ctx, int64(2), "https://source.unsplash.com/800x1200/?book,dark,eternal").Return(nil),
		mockRepo.EXPECT().SetCoverImage(ctx, int64(3), "https://source.unsplash.com/800x1200/?book,dark,pandora").Return(nil),
	)

	got, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, b := range got {
		assert.True(t, b.HasCover(), "book %d has no cover", b.ID)
	}
	assert.Equal(t, "https://example.com/c.jpg", *got[0].CoverImage)
}

func TestService_List_NothingToBackfill(t *testing.T) {
	service, mockRepo := newTestService(t)
	ctx := context.Background()

	mockRepo.EXPECT().ListAll(ctx, OrderTitle).Return([]Book{{ID: 1, Title: "A", CoverImage: strPtr("x")}}, nil)
	mockRepo.EXPECT().SetCoverImage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.List(ctx)
	require.NoError(t, err)
}

func TestService_List_Errors(t *testing.T) {
	t.Run("list fails", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().ListAll(gomock.Any(), OrderTitle).Return(nil, context.DeadlineExceeded)

		_, err := service.List(context.Background())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("cover write fails", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().ListAll(gomock.Any(), OrderTitle).Return([]Book{{ID: 7, Title: "X"}}, nil)
		mockRepo.EXPECT().SetCoverImage(gomock.Any(), int64(7), gomock.Any()).Return(errors.New("boom"))

		_, err := service.List(context.Background())
		assert.Error(t, err)
	})
}

func TestService_SearchAndSort(t *testing.T) {
	service, mockRepo := newTestService(t)
	ctx := context.Background()

	mockRepo.EXPECT().Search(ctx, "dark").Return([]Book{{ID: 1}}, nil)
	mockRepo.EXPECT().ListAll(ctx, OrderRateDesc).Return([]Book{{ID: 2}}, nil)

	found, err := service.Search(ctx, "dark")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	sorted, err := service.Sort(ctx, OrderRateDesc)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sorted[0].ID)
}

func TestService_Add(t *testing.T) {
	t.Run("inserts and relists", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		ctx := context.Background()
		f := Fields{Title: "X", Notes: "Line1\nLine2"}

		gomock.InOrder(
			mockRepo.EXPECT().Insert(ctx, f).Return(nil),
			mockRepo.EXPECT().ListAll(ctx, OrderTitle).Return([]Book{{ID: 1, Title: "X"}}, nil),
		)

		books, err := service.Add(ctx, f)
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Add(context.Background(), Fields{Author: "Someone"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative page count rejected", func(t *testing.T) {
		service, _ := newTestService(t)
		pages := -1

		_, err := service.Add(context.Background(), Fields{Title: "X", PageCount: &pages})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("insert fails", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("constraint"))

		_, err := service.Add(context.Background(), Fields{Title: "X"})
		assert.Error(t, err)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("missing id affects nothing", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		ctx := context.Background()
		f := Fields{Title: "X"}

		mockRepo.EXPECT().UpdateFull(ctx, int64(999), f).Return(int64(0), nil)
		mockRepo.EXPECT().ListAll(ctx, OrderTitle).Return([]Book{}, nil)

		_, err := service.Update(ctx, int64Ptr(999), f)
		assert.NoError(t, err)
	})

	t.Run("nil id skips write", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().UpdateFull(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		mockRepo.EXPECT().ListAll(gomock.Any(), OrderTitle).Return([]Book{}, nil)

		_, err := service.Update(context.Background(), nil, Fields{Title: "X"})
		assert.NoError(t, err)
	})

	t.Run("store error", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().UpdateFull(gomock.Any(), int64(1), gomock.Any()).Return(int64(0), errors.New("boom"))

		_, err := service.Update(context.Background(), int64Ptr(1), Fields{Title: "X"})
		assert.Error(t, err)
	})
}

func TestService_Edit(t *testing.T) {
	service, mockRepo := newTestService(t)
	ctx := context.Background()
	f := Fields{Title: "X", Quote: "q"}

	mockRepo.EXPECT().UpdateDetails(ctx, int64(3), f).Return(int64(1), nil)
	assert.NoError(t, service.Edit(ctx, int64Ptr(3), f))

	mockRepo.EXPECT().UpdateDetails(ctx, int64(4), f).Return(int64(0), nil)
	assert.NoError(t, service.Edit(ctx, int64Ptr(4), f))

	assert.ErrorIs(t, service.Edit(ctx, int64Ptr(5), Fields{}), ErrInvalidInput)
	assert.NoError(t, service.Edit(ctx, nil, f))
}

func TestService_Delete(t *testing.T) {
	service, mockRepo := newTestService(t)
	ctx := context.Background()

	mockRepo.EXPECT().Delete(ctx, int64(12345)).Return(nil)
	assert.NoError(t, service.Delete(ctx, int64Ptr(12345)))
	assert.NoError(t, service.Delete(ctx, nil))
}
