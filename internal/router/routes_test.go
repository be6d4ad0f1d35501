package router_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestIsRedirectedToLogin(t *testing.T) {
	a := newApp(t)
	a.token = ""

	for _, path := range []string{"/", "/cultural-heritages", "/art-studios/create", "/sub-districts"} {
		w := a.get(path)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := a.submit(http.MethodPost, "/cultural-heritages", validForm(1))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Zero(t, a.stores.CulturalHeritages.Count())
}

func TestRootRedirectsToCulturalHeritages(t *testing.T) {
	a := newApp(t)

	w := a.get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cultural-heritages", w.Header().Get("Location"))
}

func TestLoginFlow(t *testing.T) {
	a := newApp(t)
	a.token = ""

	page := a.get("/login")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `action="/login"`)

	bad := a.submit(http.MethodPost, "/login", url.Values{"email": {"admin@example.test"}, "password": {"wrong-password"}})
	assert.Equal(t, http.StatusUnprocessableEntity, bad.Code)
	assert.Contains(t, bad.Body.String(), "These credentials do not match our records.")
	assert.Contains(t, bad.Body.String(), `value="admin@example.test"`)

	invalid := a.submit(http.MethodPost, "/login", url.Values{"email": {"not-an-email"}, "password": {"x"}})
	assert.Equal(t, http.StatusUnprocessableEntity, invalid.Code)
	assert.Contains(t, invalid.Body.String(), `is-invalid" name="email"`)

	ok := a.submit(http.MethodPost, "/login", url.Values{"email": {"Admin@Example.test"}, "password": {"password123"}})
	require.Equal(t, http.StatusSeeOther, ok.Code)
	assert.Equal(t, "/cultural-heritages", ok.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range ok.Result().Cookies() {
		if c.Name == sessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	a.token = session.Value
	index := a.get("/cultural-heritages")
	assert.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Body.String(), "Admin Budaya")
	assert.Equal(t, "no-store, private", index.Header().Get("Cache-Control"))
}

func TestLogoutEndsSession(t *testing.T) {
	a := newApp(t)

	w := a.submit(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	after := a.get("/cultural-heritages")
	assert.Equal(t, http.StatusSeeOther, after.Code)
}

func TestUnknownPageIsNotFound(t *testing.T) {
	a := newApp(t)

	w := a.get("/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Record not found.")
}

func TestArtStudioLifecycle(t *testing.T) {
	a := newApp(t)
	form := url.Values{
		"name":         {"Sanggar Tingang Menteng"},
		"sub_district": {"Kapuas Hilir"},
		"village":      {"Selat Hulu"},
		"leader":       {"Damang Kepala Adat"},
		"art_type":     {"Tari"},
		"building":     {"Balai Adat"},
		"description":  {"Sanggar tari tradisional"},
	}

	invalid := a.submit(http.MethodPost, "/art-studios", url.Values{"name": {"Sanggar"}})
	assert.Equal(t, http.StatusUnprocessableEntity, invalid.Code)
	for _, field := range []string{"sub_district", "leader", "art_type", "building"} {
		assert.Contains(t, invalid.Body.String(), fmt.Sprintf(`is-invalid" name="%s"`, field))
	}
	assert.Zero(t, a.stores.ArtStudios.Count())

	created := a.submit(http.MethodPost, "/art-studios", form)
	show := a.follow(created)
	assert.Contains(t, show.Body.String(), "A new Art Studio has been created.")
	assert.Contains(t, show.Body.String(), "Damang Kepala Adat")
	assert.Equal(t, 1, a.stores.ArtStudios.Count())
	path := created.Header().Get("Location")

	form.Set("leader", "Bapak Tambun")
	updated := a.follow(a.submit(http.MethodPatch, path, form))
	assert.Contains(t, updated.Body.String(), "Art Studio data has been updated.")
	assert.Contains(t, updated.Body.String(), "Bapak Tambun")

	confirm := a.get(path + "/edit?action=delete")
	assert.Contains(t, confirm.Body.String(), `value="Yes, delete it!"`)
	assert.Equal(t, 1, a.stores.ArtStudios.Count())

	deleted := a.follow(a.submit(http.MethodDelete, path, nil))
	assert.Contains(t, deleted.Body.String(), "Art Studio has been deleted.")
	assert.Zero(t, a.stores.ArtStudios.Count())
}

func TestSubDistrictLifecycle(t *testing.T) {
	a := newApp(t)

	created := a.submit(http.MethodPost, "/sub-districts", url.Values{"name": {"Mantangai"}})
	assert.Contains(t, a.follow(created).Body.String(), "A new Sub-district has been created.")
	path := created.Header().Get("Location")

	duplicate := a.submit(http.MethodPost, "/sub-districts", url.Values{"name": {"mantangai"}})
	assert.Equal(t, http.StatusUnprocessableEntity, duplicate.Code)
	assert.Contains(t, duplicate.Body.String(), "has already been taken")

	index := a.get("/sub-districts")
	assert.Contains(t, index.Body.String(), "Mantangai")

	deleted := a.follow(a.submit(http.MethodDelete, path, nil))
	assert.Contains(t, deleted.Body.String(), "Sub-district has been deleted.")
}

func TestSubDistrictInUseIsKept(t *testing.T) {
	a := newApp(t)
	h := a.culturalHeritage()
	path := fmt.Sprintf("/sub-districts/%d", h.SubDistrictID)

	w := a.submit(http.MethodDelete, path, nil)
	assert.Equal(t, path, w.Header().Get("Location"))

	show := a.follow(w)
	assert.Contains(t, show.Body.String(), "cannot be deleted")
	assert.Contains(t, show.Body.String(), "alert-danger")

	_, err := a.stores.SubDistricts.GetByID(context.Background(), h.SubDistrictID)
	assert.NoError(t, err)
}

func apiRequest(a *app, method, path, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) response.Response {
	t.Helper()
	body := response.Response{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestAPILoginAndRead(t *testing.T) {
	a := newApp(t)
	h := a.culturalHeritage(func(h *model.CulturalHeritage) { h.Name = "Sandung Raden" })

	bad := apiRequest(a, http.MethodPost, "/api/v1/auth/login", `{"email":"admin@example.test","password":"nope-nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
	assert.Equal(t, response.ErrInvalidCredentials, decode(t, bad, nil).Error.Code)

	login := apiRequest(a, http.MethodPost, "/api/v1/auth/login", `{"email":"admin@example.test","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, login.Code)
	var token model.LoginResponse
	decode(t, login, &token)
	require.NotEmpty(t, token.Token)
	assert.Equal(t, "Admin Budaya", token.User.Name)

	unauthorized := apiRequest(a, http.MethodGet, "/api/v1/cultural-heritages", "", "")
	assert.Equal(t, http.StatusUnauthorized, unauthorized.Code)

	list := apiRequest(a, http.MethodGet, "/api/v1/cultural-heritages?q=sandung", "", token.Token)
	require.Equal(t, http.StatusOK, list.Code)
	var records []model.CulturalHeritage
	body := decode(t, list, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "Sandung Raden", records[0].Name)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 1, body.Pagination.TotalItems)

	one := apiRequest(a, http.MethodGet, "/api/v1/cultural-heritages/"+strconv.Itoa(h.ID), "", token.Token)
	require.Equal(t, http.StatusOK, one.Code)
	var record model.CulturalHeritage
	decode(t, one, &record)
	assert.Equal(t, h.ID, record.ID)

	missing := apiRequest(a, http.MethodGet, "/api/v1/cultural-heritages/999", "", token.Token)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	for _, id := range []string{"abc", "0", "3000000000"} {
		badID := apiRequest(a, http.MethodGet, "/api/v1/cultural-heritages/"+id, "", token.Token)
		assert.Equal(t, http.StatusBadRequest, badID.Code, id)
	}

	subDistricts := apiRequest(a, http.MethodGet, "/api/v1/sub-districts", "", token.Token)
	var list2 []model.SubDistrict
	decode(t, subDistricts, &list2)
	assert.Len(t, list2, 1)
}

func TestHealth(t *testing.T) {
	a := newApp(t)

	w := a.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
