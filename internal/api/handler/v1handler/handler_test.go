package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/api/handler/v1handler"
	"storefront/internal/catalog"
	mockcatalog "storefront/internal/catalog/mock"
	"storefront/pkg/domain"
	"storefront/pkg/serrors"
	"storefront/pkg/storage/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewError_InternalOnPlainError(t *testing.T) {
	t.Parallel()

	status, res := v1handler.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, serrors.ErrInternal.Error(), res.Code)
	require.Equal(t, "internal error", res.Message)
}

func TestNewError_StorageDetailsHidden(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("could not list users: %w",
		serrors.Wrap(serrors.ErrStorage, errors.New("dial tcp 10.0.0.1:5432"), "could not select users"))
	status, res := v1handler.NewError(context.Background(), err)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, serrors.ErrStorage.Error(), res.Code)
	require.Equal(t, "internal error", res.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	t.Parallel()

	status, res := v1handler.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Code)
	require.Equal(t, "resource not found", res.Message)
}

func TestNewError_SemanticWithMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
	}{
		{serrors.With(serrors.ErrInvalidInput, "content is not available"), http.StatusBadRequest},
		{serrors.With(serrors.ErrDuplicate, "content is not available"), http.StatusConflict},
		{fmt.Errorf("could not create user: %w",
			serrors.With(serrors.ErrInvalidInput, "content is not available")), http.StatusBadRequest},
	}

	for _, tc := range cases {
		status, res := v1handler.NewError(context.Background(), tc.err)
		require.Equal(t, tc.status, status)
		require.Equal(t, "content is not available", res.Message)
	}
}

type testServer struct {
	creators  *mockcatalog.MockCreatorService
	games     *mockcatalog.MockContentService[*domain.Game]
	movies    *mockcatalog.MockContentService[*domain.Movie]
	albums    *mockcatalog.MockContentService[*domain.MusicAlbum]
	users     *mockcatalog.MockUserService
	purchases *mockcatalog.MockPurchaseService
	handler   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := &testServer{
		creators:  mockcatalog.NewMockCreatorService(ctrl),
		games:     mockcatalog.NewMockContentService[*domain.Game](ctrl),
		movies:    mockcatalog.NewMockContentService[*domain.Movie](ctrl),
		albums:    mockcatalog.NewMockContentService[*domain.MusicAlbum](ctrl),
		users:     mockcatalog.NewMockUserService(ctrl),
		purchases: mockcatalog.NewMockPurchaseService(ctrl),
	}
	s.handler = v1handler.New(v1handler.Deps{
		Creators:  s.creators,
		Games:     s.games,
		Movies:    s.movies,
		Albums:    s.albums,
		Users:     s.users,
		Purchases: s.purchases,
	}).Routes()

	return s
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestCreatePurchase_Shape(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	cases := []struct {
		name string
		body string
		msg  string
	}{
		{name: "malformed json", body: `{"userId":`, msg: "invalid request body"},
		{name: "unknown field", body: `{"userId":1,"contentId":2,"pricePaid":"1.00","coupon":"x"}`},
		{name: "missing price", body: `{"userId":1,"contentId":2}`, msg: "pricePaid is required"},
		{name: "negative user", body: `{"userId":-1,"contentId":2,"pricePaid":"1.00"}`, msg: "userId must be greater than 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s.handler, http.MethodPost, "/purchases", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			res := decode[v1handler.ErrorResponse](t, rec)
			require.Equal(t, serrors.ErrInvalidInput.Error(), res.Code)
			if tc.msg != "" {
				require.Contains(t, res.Message, tc.msg)
			}
		})
	}
}

func TestCreatePurchase_StatusFromKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
	}{
		{serrors.With(serrors.ErrInvalidInput, "content is not available"), http.StatusBadRequest},
		{serrors.With(serrors.ErrNotFound, "user 1 not found"), http.StatusNotFound},
		{serrors.With(serrors.ErrDuplicate, "user 1 already purchased content 2"), http.StatusConflict},
		{serrors.Wrap(serrors.ErrStorage, errors.New("broken pipe"), "could not insert"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		s := newTestServer(t)
		s.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, tc.err)

		rec := do(t, s.handler, http.MethodPost, "/purchases", `{"userId":1,"contentId":2,"pricePaid":"15.99"}`)
		require.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestCreatePurchase_BusyIsRetryable(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not lock purchase: %w",
			serrors.With(serrors.ErrBusy, "operation already in progress")))

	rec := do(t, s.handler, http.MethodPost, "/purchases", `{"userId":1,"contentId":2,"pricePaid":"15.99"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))

	res := decode[v1handler.ErrorResponse](t, rec)
	require.Equal(t, serrors.ErrBusy.Error(), res.Code)
	require.Equal(t, "operation already in progress", res.Message)
}

func TestCreatePurchase_Created(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.purchases.EXPECT().Purchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Purchase) (*domain.Purchase, error) {
			require.Equal(t, domain.UserID(1), p.UserID)
			require.Equal(t, domain.ContentID(2), p.ContentID)
			require.Equal(t, "15.99", p.PricePaid.StringFixed(2))
			require.NoError(t, p.SetID(9))

			return p, nil
		})

	rec := do(t, s.handler, http.MethodPost, "/purchases", `{"userId":1,"contentId":2,"pricePaid":15.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	res := decode[v1handler.PurchaseResponse](t, rec)
	require.Equal(t, domain.PurchaseID(9), res.ID)
	require.Equal(t, "15.99", res.PricePaid)
}

func TestGetCreator_InvalidID(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	for _, target := range []string{"/creators/abc", "/creators/0", "/creators/-3"} {
		rec := do(t, s.handler, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestTopCreator(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.creators.EXPECT().TopEarner(gomock.Any()).
		Return(nil, decimal.Zero, serrors.With(serrors.ErrNotFound, "no purchases recorded yet"))

	rec := do(t, s.handler, http.MethodGet, "/creators/top", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "no purchases recorded yet", decode[v1handler.ErrorResponse](t, rec).Message)
}

func TestTopCreator_ReadsCreatorAndRevenueTogether(t *testing.T) {
	t.Parallel()

	creator := domain.NewCreator("Mojang", "Sweden", "")
	require.NoError(t, creator.SetID(4))

	s := newTestServer(t)
	s.creators.EXPECT().TopEarner(gomock.Any()).
		Return(creator, decimal.RequireFromString("31.98"), nil).
		Times(1)

	rec := do(t, s.handler, http.MethodGet, "/creators/top", "")
	require.Equal(t, http.StatusOK, rec.Code)

	top := decode[v1handler.TopCreatorResponse](t, rec)
	require.Equal(t, domain.CreatorID(4), top.Creator.ID)
	require.Equal(t, "Mojang", top.Creator.Name)
	require.Equal(t, "31.98", top.Revenue)
}

func TestListGames_QueryParameters(t *testing.T) {
	t.Parallel()

	creator := domain.NewCreator("Mojang", "Sweden", "")
	require.NoError(t, creator.SetID(1))
	available := domain.NewGame("Minecraft", creator, 2011, true)
	require.NoError(t, available.SetID(1))
	retired := domain.NewGame("Minecraft Dungeons", creator, 2020, false)
	require.NoError(t, retired.SetID(2))

	s := newTestServer(t)
	s.games.EXPECT().All(gomock.Any()).Return([]*domain.Game{available, retired}, nil)
	s.games.EXPECT().Available(gomock.Any()).Return([]*domain.Game{available}, nil)
	s.games.EXPECT().Search(gomock.Any(), "mine").Return([]*domain.Game{available, retired}, nil).Times(2)

	rec := do(t, s.handler, http.MethodGet, "/games", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]v1handler.ContentResponse](t, rec), 2)

	rec = do(t, s.handler, http.MethodGet, "/games?available=true", "")
	require.Len(t, decode[[]v1handler.ContentResponse](t, rec), 1)

	rec = do(t, s.handler, http.MethodGet, "/games?q=mine", "")
	require.Len(t, decode[[]v1handler.ContentResponse](t, rec), 2)

	rec = do(t, s.handler, http.MethodGet, "/games?q=mine&available=1", "")
	games := decode[[]v1handler.ContentResponse](t, rec)
	require.Len(t, games, 1)
	require.Equal(t, "Minecraft", games[0].Name)
	require.Equal(t, "15.99", games[0].Price)
	require.Equal(t, "Mojang", games[0].CreatorName)

	rec = do(t, s.handler, http.MethodGet, "/games?available=maybe", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMovie_RequiresMovieFields(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := do(t, s.handler, http.MethodPost, "/movies",
		`{"name":"Inception","creatorId":1,"releaseYear":2010,"available":true,"durationMinutes":148}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "rentable is required", decode[v1handler.ErrorResponse](t, rec).Message)
}

// TestRoutes_EndToEnd drives the real services over the in-memory storage.
func TestRoutes_EndToEnd(t *testing.T) {
	t.Parallel()

	h := v1handler.New(v1handler.DepsFromCatalog(catalog.New(memory.New(), catalog.Options{}))).Routes()

	rec := do(t, h, http.MethodPost, "/creators", `{"name":"Michael Jackson","country":"USA"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	creator := decode[v1handler.CreatorResponse](t, rec)
	require.Equal(t, domain.DefaultBio, creator.Bio)

	rec = do(t, h, http.MethodPost, "/albums", fmt.Sprintf(
		`{"name":"Thriller","creatorId":%d,"releaseYear":1982,"available":true,"trackCount":9}`, creator.ID))
	require.Equal(t, http.StatusCreated, rec.Code)
	album := decode[v1handler.ContentResponse](t, rec)
	require.Equal(t, "17.91", album.Price)
	require.Equal(t, domain.ContentTypeMusicAlbum, album.Type)
	require.NotNil(t, album.TrackCount)
	require.Equal(t, 9, *album.TrackCount)

	rec = do(t, h, http.MethodPost, "/albums",
		`{"name":"Bad","creatorId":999,"releaseYear":1987,"available":true,"trackCount":11}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/users", `{"name":"Bob","email":"bob@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decode[v1handler.UserResponse](t, rec)

	purchase := fmt.Sprintf(`{"userId":%d,"contentId":%d,"pricePaid":"%s"}`, user.ID, album.ID, album.Price)
	rec = do(t, h, http.MethodPost, "/purchases", purchase)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, h, http.MethodPost, "/purchases", purchase)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/users/%d/purchases", user.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]v1handler.PurchaseResponse](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/creators/top", "")
	require.Equal(t, http.StatusOK, rec.Code)
	top := decode[v1handler.TopCreatorResponse](t, rec)
	require.Equal(t, creator.ID, top.Creator.ID)
	require.Equal(t, "17.91", top.Revenue)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/creators/%d", creator.ID), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, fmt.Sprintf("/users/%d/purchases", user.ID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
