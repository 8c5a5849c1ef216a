package app

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"portfolio-site/internal/config"
	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/infrastructure/profilefile"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	return newTestAppWith(t, nil)
}

// newTestAppWith lets a test adjust the embedded profile before it is frozen.
func newTestAppWith(t *testing.T, edit func(p *profile.Profile)) (*App, *bytes.Buffer) {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "KUMMARI_SHRUTHI_RESUME.pdf"), []byte("%PDF-1.4 test"), 0o644))

	store, err := profilefile.Load("")
	require.NoError(t, err)
	if edit != nil {
		p := store.Snapshot()
		edit(&p)
		store = profile.NewStore(p)
	}

	var logs bytes.Buffer
	cfg := config.Config{
		App:     config.AppConfig{AppName: "portfolio-test", Environment: "test", HTTPPort: "0"},
		Profile: config.ProfileConfig{StaticDir: staticDir},
		QR:      config.QRConfig{Width: 200, Margin: 2},
	}
	c := NewContainerWithStore(cfg, store, log.New(&logs, "", 0))

	a, err := New(c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return a, &logs
}

func do(t *testing.T, a *App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.Fiber.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, a *App, target string) *http.Response {
	t.Helper()
	return do(t, a, httptest.NewRequest(fiber.MethodGet, target, nil))
}

func document(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func decode(t *testing.T, resp *http.Response, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestHealth_CacheBypassed(t *testing.T) {
	a, _ := newTestApp(t)

	resp := get(t, a, "/health")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Cache string `json:"cache"`
	}
	env := decode(t, resp, &data)
	assert.Equal(t, "ok", env.Message)
	assert.Equal(t, "bypassed", data.Cache)
}

func TestHomePage(t *testing.T) {
	a, _ := newTestApp(t)
	doc := document(t, get(t, a, "/"))

	assert.Equal(t, "K Shruthi", doc.Find(".hero-name").Text())
	assert.Equal(t, "Full Stack Developer", doc.Find(".hero-title").Text())
	assert.Equal(t, "10+", doc.Find(`.stat[data-label="Technologies"] .stat-number`).Text())
	assert.True(t, doc.Find(`nav a[href="/"]`).HasClass("active"))
	assert.False(t, doc.Find(`nav a[href="/skills"]`).HasClass("active"))
	assert.Equal(t, 1, doc.Find("main#home").Length())
}

func TestSkillsPage_DefaultShowsAll(t *testing.T) {
	a, _ := newTestApp(t)
	doc := document(t, get(t, a, "/skills"))

	assert.Equal(t, 10, doc.Find(".skill-card").Length())
	assert.True(t, doc.Find(`.category-btn[data-category="All"]`).HasClass("active"))
	assert.Equal(t, 8, doc.Find(".category-btn").Length())

	django := doc.Find(".skill-card").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find(".skill-name").Text() == "Django"
	})
	require.Equal(t, 1, django.Length())
	assert.Equal(t, "80%", django.Find(".progress-text").Text())
	assert.Equal(t, "Advanced", django.Find(".level-indicator").Text())
}

func TestSkillsPage_FilterByCategory(t *testing.T) {
	a, _ := newTestApp(t)
	doc := document(t, get(t, a, "/skills?category=Hardware"))

	var names []string
	doc.Find(".skill-card .skill-name").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	assert.Equal(t, []string{"Embedded Systems", "Telecommunications", "DTMF Signals"}, names)
	assert.True(t, doc.Find(`.category-btn[data-category="Hardware"]`).HasClass("active"))
	assert.False(t, doc.Find(`.category-btn[data-category="All"]`).HasClass("active"))
}

func TestSkillsPage_CategoryWithSpace(t *testing.T) {
	a, _ := newTestApp(t)
	doc := document(t, get(t, a, "/skills?category="+url.QueryEscape("Control Systems")))

	assert.Equal(t, 1, doc.Find(".skill-card").Length())
	assert.Equal(t, "Fuzzy Logic Control", doc.Find(".skill-card .skill-name").Text())
}

func TestSkillsPage_UnknownCategoryIsEmpty(t *testing.T) {
	a, _ := newTestApp(t)
	doc := document(t, get(t, a, "/skills?category=Cooking"))

	assert.Equal(t, 0, doc.Find(".skill-card").Length())
	assert.Equal(t, 1, doc.Find(".skills-empty").Length())
}

func TestContactPage(t *testing.T) {
	a, _ := newTestApp(t)
	doc := document(t, get(t, a, "/contact"))

	assert.Equal(t, 4, doc.Find(".contact-method").Length())
	href, _ := doc.Find("a.info-value.email").Attr("href")
	assert.Equal(t, "mailto:shruthik1603@gmail.com", href)
	href, _ = doc.Find("a.info-value.phone").Attr("href")
	assert.Equal(t, "tel:6300833287", href)

	src, ok := doc.Find("img.qr-code").Attr("src")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(src, "data:image/png;base64,"))
	name, _ := doc.Find("a.qr-download").Attr("download")
	assert.Equal(t, "K_Shruthi_contact_qr.png", name)
}

func TestContactPage_QRFailureHidesOnlyQRBlock(t *testing.T) {
	for name, link := range map[string]string{"empty": "", "no scheme": "www.linkedin.com/in/kshruthi1603"} {
		t.Run(name, func(t *testing.T) {
			a, logs := newTestAppWith(t, func(p *profile.Profile) {
				p.Contact.QRCodeLink = link
			})

			doc := document(t, get(t, a, "/contact"))
			assert.Equal(t, 0, doc.Find("img.qr-code").Length())
			assert.Equal(t, 0, doc.Find("a.qr-download").Length())
			assert.Equal(t, 1, doc.Find("p.qr-unavailable").Length())
			assert.Equal(t, 4, doc.Find(".contact-method").Length())
			assert.Equal(t, 1, doc.Find(".contact-form form").Length())
			assert.Contains(t, logs.String(), "contact qr unavailable")

			resp := get(t, a, "/downloads/qr.png")
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
			assert.Empty(t, resp.Header.Get(fiber.HeaderContentDisposition))
		})
	}
}

func TestContactRedirects(t *testing.T) {
	a, _ := newTestApp(t)

	cases := map[string]string{
		"/contact/call":  "tel:6300833287",
		"/contact/sms":   "sms:6300833287",
		"/contact/email": "mailto:shruthik1603@gmail.com",
	}
	for path, want := range cases {
		resp := get(t, a, path)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, want, resp.Header.Get(fiber.HeaderLocation), path)
	}

	resp := get(t, a, "/contact/whatsapp")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderLocation), "https://wa.me/916300833287?text=Hi%20Shruthi!"))
}

func TestContactRedirect_UnknownMethod(t *testing.T) {
	a, _ := newTestApp(t)

	resp := get(t, a, "/contact/pigeon")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
}

func postForm(t *testing.T, a *App, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return do(t, a, req)
}

func TestContactMessage_RedirectsToMailto(t *testing.T) {
	a, _ := newTestApp(t)

	resp := postForm(t, a, "/contact/message", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello there"},
	})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	loc := resp.Header.Get(fiber.HeaderLocation)
	assert.True(t, strings.HasPrefix(loc, "mailto:shruthik1603@gmail.com?subject=Message%20from%20Ada&body="), loc)
	assert.Contains(t, loc, "ada%40example.com")
}

func TestContactMessage_InvalidForm(t *testing.T) {
	a, _ := newTestApp(t)

	resp := postForm(t, a, "/contact/message", url.Values{
		"name":    {"Ada"},
		"email":   {"nope"},
		"message": {"Hello"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderLocation))
}

func TestDownloadQR(t *testing.T) {
	a, _ := newTestApp(t)

	resp := get(t, a, "/downloads/qr.png")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "K_Shruthi_contact_qr.png")

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestDownloadResume(t *testing.T) {
	a, _ := newTestApp(t)

	resp := get(t, a, "/downloads/resume")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "K_Shruthi_Resume.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(body))
}

func TestStaticFiles(t *testing.T) {
	a, _ := newTestApp(t)

	resp := get(t, a, "/static/KUMMARI_SHRUTHI_RESUME.pdf")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(body))
}

func TestAPI_Profile(t *testing.T) {
	a, _ := newTestApp(t)

	var data struct {
		Identity struct {
			Name string `json:"name"`
		} `json:"identity"`
		Stats struct {
			Technologies string `json:"technologies"`
			Projects     int    `json:"projects"`
		} `json:"stats"`
		Downloads struct {
			ResumeFileName string `json:"resumeFileName"`
		} `json:"downloads"`
	}
	resp := get(t, a, "/api/v1/profile")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &data)

	assert.Equal(t, "K Shruthi", data.Identity.Name)
	assert.Equal(t, "10+", data.Stats.Technologies)
	assert.Equal(t, "K_Shruthi_Resume.pdf", data.Downloads.ResumeFileName)
}

// assertCamelKeys fails on any object key in v containing an underscore.
func assertCamelKeys(t *testing.T, path string, v any) {
	t.Helper()
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			assert.NotContains(t, k, "_", "%s.%s", path, k)
			assertCamelKeys(t, path+"."+k, child)
		}
	case []any:
		for _, child := range x {
			assertCamelKeys(t, path+"[]", child)
		}
	}
}

func TestAPI_JSONKeysAreCamelCase(t *testing.T) {
	a, _ := newTestApp(t)

	for _, path := range []string{
		"/api/v1/profile",
		"/api/v1/skills",
		"/api/v1/categories",
		"/api/v1/projects",
		"/api/v1/education",
		"/api/v1/achievements",
		"/api/v1/hobbies",
		"/api/v1/contact",
	} {
		resp := get(t, a, path)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		var body any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), path)
		assertCamelKeys(t, path, body)
	}
}

func TestAPI_Skills(t *testing.T) {
	a, _ := newTestApp(t)

	var skills []struct {
		Name       string `json:"name"`
		Percentage int    `json:"percentage"`
	}
	resp := get(t, a, "/api/v1/skills?category=Frontend")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &skills)

	require.Len(t, skills, 1)
	assert.Equal(t, "HTML/CSS", skills[0].Name)
	assert.Equal(t, 95, skills[0].Percentage)
}

func TestAPI_Categories(t *testing.T) {
	a, _ := newTestApp(t)

	var cats []struct {
		Name   string `json:"name"`
		Active bool   `json:"active"`
	}
	resp := get(t, a, "/api/v1/categories")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &cats)

	require.Len(t, cats, 8)
	assert.Equal(t, "All", cats[0].Name)
	assert.True(t, cats[0].Active)
}

func TestAPI_ContactURIs(t *testing.T) {
	a, _ := newTestApp(t)

	var uris []struct {
		Method string `json:"method"`
		URI    string `json:"uri"`
	}
	resp := get(t, a, "/api/v1/contact")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &uris)

	require.Len(t, uris, 4)
	assert.Equal(t, "whatsapp", uris[0].Method)

	resp = get(t, a, "/api/v1/contact/pigeon")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	env := decode(t, resp, nil)
	assert.Equal(t, "Unknown contact method", env.Message)
}

func TestNotFound(t *testing.T) {
	a, _ := newTestApp(t)

	resp := get(t, a, "/api/v1/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	resp = get(t, a, "/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
}

func TestAccessLogAndRequestID(t *testing.T) {
	a, logs := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "rid-123")
	resp := do(t, a, req)

	assert.Equal(t, "rid-123", resp.Header.Get("X-Request-ID"))
	assert.Contains(t, logs.String(), "rid=rid-123")
}

func TestNew_NilContainer(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(" :9090 ")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr("  ")
	require.Error(t, err)
}
