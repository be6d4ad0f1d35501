package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/config"
	"github.com/stemsi/heritage-admin/internal/factory"
	"github.com/stemsi/heritage-admin/internal/handler"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/router"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/testutil"
	"github.com/stemsi/heritage-admin/internal/validator"
	"github.com/stemsi/heritage-admin/internal/view"
	"github.com/stretchr/testify/require"
)

const sessionCookie = "heritage_session"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup("en")
	os.Exit(m.Run())
}

// app is the whole HTTP stack over in-memory stores, logged in as user.
type app struct {
	t       *testing.T
	handler http.Handler
	stores  *testutil.Stores
	factory *factory.Factory
	auth    *service.AuthService
	user    *model.User
	token   string
}

func newApp(t *testing.T) *app {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{
		GinMode:       gin.TestMode,
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		BcryptCost:    4,
		SessionCookie: sessionCookie,
		PerPage:       25,
	}
	log := zerolog.Nop()
	stores := testutil.NewStores()

	lang := view.NewLang("en")
	renderer, err := view.NewRenderer(lang)
	require.NoError(t, err)

	authService := service.NewAuthService(cfg, stores.Users, stores.Sessions)
	flashService := service.NewFlashService(stores.Flashes, log)
	subDistrictService := service.NewSubDistrictService(stores.SubDistricts, log)
	heritageService := service.NewCulturalHeritageService(stores.CulturalHeritages, stores.SubDistricts, cfg.PerPage, log)
	studioService := service.NewArtStudioService(stores.ArtStudios, cfg.PerPage, log)

	pages := handler.NewPages(lang, flashService, log)
	handlers := &router.Handlers{
		Pages:             pages,
		Auth:              handler.NewAuthHandler(cfg, pages, authService),
		CulturalHeritages: handler.NewCulturalHeritageHandler(pages, heritageService, subDistrictService),
		ArtStudios:        handler.NewArtStudioHandler(pages, studioService),
		SubDistricts:      handler.NewSubDistrictHandler(pages, subDistrictService),
		API:               handler.NewAPIHandler(heritageService, subDistrictService),
	}

	a := &app{
		t:       t,
		handler: router.SetupRouter(ctx, authService, renderer, handlers, cfg, log),
		stores:  stores,
		factory: factory.New(factory.Stores{
			Users:             stores.Users,
			SubDistricts:      stores.SubDistricts,
			CulturalHeritages: stores.CulturalHeritages,
			ArtStudios:        stores.ArtStudios,
		}),
		auth: authService,
	}

	a.user, err = authService.Register(ctx, "Admin Budaya", "admin@example.test", "password123")
	require.NoError(t, err)
	a.token, _, err = authService.Login(ctx, "admin@example.test", "password123")
	require.NoError(t, err)
	return a
}

// get requests path as the logged-in user.
func (a *app) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return a.serve(req)
}

// submit posts form to path the way a browser form does. method other than
// POST is tunneled through the _method field.
func (a *app) submit(method, path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	if method != http.MethodPost {
		form.Set("_method", method)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.serve(req)
}

// follow loads the redirect target of w.
func (a *app) follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	a.t.Helper()
	require.Equal(a.t, http.StatusSeeOther, w.Code, w.Body.String())
	return a.get(w.Header().Get("Location"))
}

func (a *app) serve(req *http.Request) *httptest.ResponseRecorder {
	if a.token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: a.token})
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *app) subDistrict(name string) *model.SubDistrict {
	a.t.Helper()
	sd, err := a.factory.SubDistrict(context.Background(), func(sd *model.SubDistrict) { sd.Name = name })
	require.NoError(a.t, err)
	return sd
}

func (a *app) culturalHeritage(overrides ...func(*model.CulturalHeritage)) *model.CulturalHeritage {
	a.t.Helper()
	h, err := a.factory.CulturalHeritage(context.Background(), overrides...)
	require.NoError(a.t, err)
	return h
}
