package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jsonviews/internal/adapter/out/storage/inmemory"
	"jsonviews/internal/model"
	"jsonviews/internal/service"
	"jsonviews/internal/view/postform"
	"jsonviews/pkg/pagination"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 9, 24, 12, 0, 0, 0, time.UTC)

func newPostService(m service.PlaceholderAPI, st service.SessionStorage) *service.PostService {
	return service.NewPostService(m, st,
		service.WithClock(func() time.Time { return fixedNow }),
	)
}

func TestPostService_Board(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(m *service.MockPlaceholderAPI)
		wantIDs   []int64
		wantError string
	}{
		{
			name: "loads first five",
			setup: func(m *service.MockPlaceholderAPI) {
				m.EXPECT().
					ListPosts(gomock.Any(), pagination.PageRequest{Limit: 5}).
					Return([]model.Post{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}, nil)
			},
			wantIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "load failure shows message",
			setup: func(m *service.MockPlaceholderAPI) {
				m.EXPECT().
					ListPosts(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("offline"))
			},
			wantIDs:   []int64{},
			wantError: postform.MsgLoadFailed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			m := service.NewMockPlaceholderAPI(ctrl)
			tt.setup(m)

			svc := newPostService(m, inmemory.NewSessionStorage())
			got, err := svc.Board(context.Background(), "sid")
			require.NoError(t, err)
			require.True(t, got.Loaded)
			require.False(t, got.Loading)
			require.Equal(t, tt.wantError, got.Error)
			require.Equal(t, tt.wantIDs, collectPostIDs(got.Posts))

			// second visit does not hit the API again
			again, err := svc.Board(context.Background(), "sid")
			require.NoError(t, err)
			require.Equal(t, got.Posts, again.Posts)
		})
	}
}

func TestPostService_Board_CustomLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := service.NewMockPlaceholderAPI(ctrl)
	m.EXPECT().ListPosts(gomock.Any(), pagination.PageRequest{Limit: 10}).Return(nil, nil)

	svc := service.NewPostService(m, inmemory.NewSessionStorage(), service.WithPostsLimit(10))
	_, err := svc.Board(context.Background(), "sid")
	require.NoError(t, err)
}

func TestPostService_Submit_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := service.NewMockPlaceholderAPI(ctrl)
	gomock.InOrder(
		m.EXPECT().
			ListPosts(gomock.Any(), gomock.Any()).
			Return([]model.Post{{ID: 1, UserID: 1, Title: "old", Body: "old body"}}, nil),
		m.EXPECT().
			CreatePost(gomock.Any(), model.NewPost{Title: "T", Body: "B", UserID: 1}).
			Return(model.Post{ID: 101, UserID: 1, Title: "T", Body: "B"}, nil),
	)

	svc := newPostService(m, inmemory.NewSessionStorage())
	ctx := context.Background()

	_, err := svc.Board(ctx, "sid")
	require.NoError(t, err)

	got, err := svc.Submit(ctx, "sid", postform.Form{Title: "T", Body: "B"})
	require.NoError(t, err)
	require.False(t, got.Loading)
	require.Empty(t, got.Error)
	require.Equal(t, postform.Form{}, got.Form)
	require.Equal(t, []int64{101, 1}, collectPostIDs(got.Posts))
	require.True(t, got.Posts[0].IsNew())
	require.Equal(t, "2025-09-24T12:00:00.000Z", got.Posts[0].CreatedAtISO())
	require.False(t, got.Posts[1].IsNew())

	board, err := svc.Board(ctx, "sid")
	require.NoError(t, err)
	require.Equal(t, got, board)
}

func TestPostService_Submit_Validation(t *testing.T) {
	t.Parallel()

	forms := []postform.Form{
		{},
		{Title: "T"},
		{Body: "B"},
		{Title: "  ", Body: "\t"},
	}

	for _, form := range forms {
		ctrl := gomock.NewController(t)
		m := service.NewMockPlaceholderAPI(ctrl)
		m.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Times(0)

		svc := newPostService(m, inmemory.NewSessionStorage())
		got, err := svc.Submit(context.Background(), "sid", form)
		require.NoError(t, err)
		require.Equal(t, postform.MsgRequired, got.Error)
		require.False(t, got.Loading)
		require.Equal(t, form, got.Form)
	}
}

func TestPostService_Submit_Failure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := service.NewMockPlaceholderAPI(ctrl)
	m.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]model.Post{{ID: 1}}, nil)
	m.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(model.Post{}, errors.New("500"))

	svc := newPostService(m, inmemory.NewSessionStorage())
	ctx := context.Background()

	before, err := svc.Board(ctx, "sid")
	require.NoError(t, err)

	got, err := svc.Submit(ctx, "sid", postform.Form{Title: "T", Body: "B"})
	require.NoError(t, err)
	require.False(t, got.Loading)
	require.Equal(t, postform.MsgSubmitFailed, got.Error)
	require.Equal(t, before.Posts, got.Posts)
	require.Equal(t, postform.Form{Title: "T", Body: "B"}, got.Form)
}

func TestPostService_Submit_CancelledRequestStillFinishes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := service.NewMockPlaceholderAPI(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	m.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ model.NewPost) (model.Post, error) {
			cancel()
			return model.Post{}, ctx.Err()
		})

	st := inmemory.NewSessionStorage()
	svc := newPostService(m, st)

	got, err := svc.Submit(ctx, "sid", postform.Form{Title: "T", Body: "B"})
	require.NoError(t, err)
	require.False(t, got.Loading)
	require.Equal(t, postform.MsgSubmitFailed, got.Error)

	stored, err := st.GetSession(context.Background(), "sid")
	require.NoError(t, err)
	require.False(t, stored.Board.Loading)
}

func TestPostService_Submit_PanicStillLeavesLoading(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := service.NewMockPlaceholderAPI(ctrl)
	m.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.NewPost) (model.Post, error) {
			panic("transport blew up")
		})

	st := inmemory.NewSessionStorage()
	svc := newPostService(m, st)

	require.Panics(t, func() {
		_, _ = svc.Submit(context.Background(), "sid", postform.Form{Title: "T", Body: "B"})
	})

	stored, err := st.GetSession(context.Background(), "sid")
	require.NoError(t, err)
	require.False(t, stored.Board.Loading)
	require.Equal(t, postform.MsgSubmitFailed, stored.Board.Error)
}

func TestPostService_Submit_InProgress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := service.NewMockPlaceholderAPI(ctrl)

	st := inmemory.NewSessionStorage()
	svc := newPostService(m, st)

	started := make(chan struct{})
	release := make(chan struct{})
	m.EXPECT().
		CreatePost(gomock.Any(), model.NewPost{Title: "first", Body: "B", UserID: 1}).
		DoAndReturn(func(context.Context, model.NewPost) (model.Post, error) {
			close(started)
			<-release
			return model.Post{ID: 101, Title: "first", Body: "B", UserID: 1}, nil
		}).
		Times(1)

	done := make(chan postform.State, 1)
	go func() {
		s, _ := svc.Submit(context.Background(), "sid", postform.Form{Title: "first", Body: "B"})
		done <- s
	}()
	<-started

	got, err := svc.Submit(context.Background(), "sid", postform.Form{Title: "second", Body: "B"})
	require.ErrorIs(t, err, service.ErrSubmitInProgress)
	require.True(t, got.Loading)
	require.Equal(t, "first", got.Form.Title)

	close(release)
	final := <-done
	require.False(t, final.Loading)
	require.Equal(t, []int64{101}, collectPostIDs(final.Posts))
}

func TestPostService_Submit_EmptySession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := newPostService(service.NewMockPlaceholderAPI(ctrl), inmemory.NewSessionStorage())

	_, err := svc.Submit(context.Background(), "", postform.Form{Title: "T", Body: "B"})
	require.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = svc.Board(context.Background(), "")
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}

func collectPostIDs(posts []model.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
