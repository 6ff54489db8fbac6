package ephem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/litescript/ls-horoscope/internal/astro"
	"github.com/litescript/ls-horoscope/internal/logging"
)

const (
	// HorizonsAPIURL is the JPL Horizons JSON API endpoint.
	HorizonsAPIURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// RequestTimeout is the default HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// VectorCacheTTL is how long to cache fetched vectors.
	VectorCacheTTL = 10 * time.Minute

	horizonsTimeLayout = "2006-01-02 15:04"
)

// HorizonsProvider queries JPL Horizons for ecliptic state vectors.
type HorizonsProvider struct {
	baseURL  string
	client   *http.Client
	clock    clockwork.Clock
	cacheTTL time.Duration
	log      *logging.Logger

	mu    sync.RWMutex
	cache map[vectorKey]cachedVector
}

type vectorKey struct {
	target TargetID
	center TargetID
	start  string
}

type cachedVector struct {
	pos       astro.Vec3
	fetchedAt time.Time
}

// HorizonsOption configures a HorizonsProvider.
type HorizonsOption func(*HorizonsProvider)

// WithURL overrides the API endpoint.
func WithURL(u string) HorizonsOption {
	return func(p *HorizonsProvider) {
		if u != "" {
			p.baseURL = u
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) HorizonsOption {
	return func(p *HorizonsProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) HorizonsOption {
	return func(p *HorizonsProvider) {
		if d > 0 {
			p.client.Timeout = d
		}
	}
}

// WithClock sets the clock used for cache expiry.
func WithClock(c clockwork.Clock) HorizonsOption {
	return func(p *HorizonsProvider) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithCacheTTL sets how long fetched vectors are reused. Zero disables caching.
func WithCacheTTL(d time.Duration) HorizonsOption {
	return func(p *HorizonsProvider) {
		p.cacheTTL = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) HorizonsOption {
	return func(p *HorizonsProvider) {
		p.log = logging.OrDiscard(l)
	}
}

// NewHorizonsProvider creates a new Horizons API client.
func NewHorizonsProvider(opts ...HorizonsOption) *HorizonsProvider {
	p := &HorizonsProvider{
		baseURL:  HorizonsAPIURL,
		client:   &http.Client{Timeout: RequestTimeout},
		clock:    clockwork.NewRealClock(),
		cacheTTL: VectorCacheTTL,
		log:      logging.Discard(),
		cache:    make(map[vectorKey]cachedVector),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *HorizonsProvider) Name() string {
	return "horizons"
}

// Available implements Provider. Horizons accepts any body it knows about;
// only the bodies in Targets are advertised.
func (p *HorizonsProvider) Available(target, center TargetID) bool {
	_, okT := TargetsByNAIF[target]
	_, okC := TargetsByNAIF[center]
	return okT && okC && target != center
}

// Vector implements Provider. It requests a one-day window starting at t
// and returns the first row.
func (p *HorizonsProvider) Vector(ctx context.Context, target, center TargetID, t time.Time) (astro.Vec3, error) {
	key := vectorKey{target: target, center: center, start: formatHorizonsTime(t)}

	if p.cacheTTL > 0 {
		p.mu.RLock()
		cached, ok := p.cache[key]
		p.mu.RUnlock()
		if ok && p.clock.Since(cached.fetchedAt) < p.cacheTTL {
			p.log.Debug("horizons cache hit", "target", target, "center", center, "start", key.start)
			return cached.pos, nil
		}
	}

	pos, err := p.queryVectors(ctx, target, center, t)
	if err != nil {
		return astro.Vec3{}, err
	}

	if p.cacheTTL > 0 {
		p.mu.Lock()
		p.cache[key] = cachedVector{pos: pos, fetchedAt: p.clock.Now()}
		p.mu.Unlock()
	}
	return pos, nil
}

// InvalidateCache drops every cached vector.
func (p *HorizonsProvider) InvalidateCache() {
	p.mu.Lock()
	p.cache = make(map[vectorKey]cachedVector)
	p.mu.Unlock()
}

// queryParams builds the request; values must be quoted with single quotes.
func queryParams(target, center TargetID, t time.Time) url.Values {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%d'", target))
	params.Set("OBJ_DATA", "NO")
	params.Set("MAKE_EPHEM", "YES")
	params.Set("EPHEM_TYPE", "VECTORS")
	params.Set("CENTER", fmt.Sprintf("'@%d'", center))
	params.Set("REF_PLANE", "ECLIPTIC")
	params.Set("START_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t)))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", formatHorizonsTime(t.Add(24*time.Hour))))
	params.Set("STEP_SIZE", "'1d'")
	params.Set("VEC_TABLE", "'1'") // position only
	params.Set("OUT_UNITS", "'AU-D'")
	return params
}

func (p *HorizonsProvider) queryVectors(ctx context.Context, target, center TargetID, t time.Time) (astro.Vec3, error) {
	reqURL := p.baseURL + "?" + queryParams(target, center, t).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("build horizons request: %w", err)
	}

	p.log.Debug("horizons request", "target", target, "center", center, "start", formatHorizonsTime(t))
	resp, err := p.client.Do(req)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("horizons request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("read horizons response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return astro.Vec3{}, fmt.Errorf("horizons returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	vec, err := parseVectorResponse(body)
	if err != nil {
		return astro.Vec3{}, fmt.Errorf("%s relative to %s: %w", target, center, err)
	}
	return vec, nil
}

// horizonsResponse represents the JSON API response.
type horizonsResponse struct {
	Signature struct {
		Version string `json:"version"`
		Source  string `json:"source"`
	} `json:"signature"`
	Result string `json:"result"`
	Error  string `json:"error"`
}

// parseVectorResponse parses the Horizons JSON response for vector data.
func parseVectorResponse(body []byte) (astro.Vec3, error) {
	var resp horizonsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return astro.Vec3{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if resp.Error != "" {
		return astro.Vec3{}, fmt.Errorf("horizons error: %s", strings.TrimSpace(resp.Error))
	}

	// Find the data section between $$SOE and $$EOE markers
	soeIdx := strings.Index(resp.Result, "$$SOE")
	eoeIdx := strings.Index(resp.Result, "$$EOE")
	if soeIdx == -1 || eoeIdx == -1 || soeIdx >= eoeIdx {
		return astro.Vec3{}, fmt.Errorf("could not find vector data markers")
	}

	lines := strings.Split(resp.Result[soeIdx+5:eoeIdx], "\n")

	// Vector rows (VEC_TABLE='1'):
	// 2460651.500000000 = A.D. 2024-Dec-05 00:00:00.0000 TDB
	//  X = 1.234567890123456E+00 Y = 2.345678901234567E+00 Z = 3.456789012345678E-01
	// or, with VEC_LABELS=NO:
	//  1.234567890123456E+00  2.345678901234567E+00  3.456789012345678E-01
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "=") && strings.Contains(line, "A.D.") {
			continue
		}

		if strings.Contains(line, "X =") || strings.Contains(line, "X=") {
			return parseVectorLabeled(line)
		}

		vec, err := parseVectorUnlabeled(line)
		if err == nil {
			return vec, nil
		}
	}

	return astro.Vec3{}, fmt.Errorf("could not parse vector data")
}

// parseVectorLabeled parses: X = 1.23E+00 Y = 2.34E+00 Z = 3.45E-01
func parseVectorLabeled(line string) (astro.Vec3, error) {
	// parts[1] holds "X_value Y", parts[2] "Y_value Z", parts[3] "Z_value"
	parts := strings.Split(line, "=")
	if len(parts) < 4 {
		return astro.Vec3{}, fmt.Errorf("invalid labeled format")
	}

	var vals [3]float64
	for i := 0; i < 3; i++ {
		fields := strings.Fields(parts[i+1])
		if len(fields) == 0 {
			return astro.Vec3{}, fmt.Errorf("invalid labeled format")
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return astro.Vec3{}, err
		}
		vals[i] = v
	}
	return astro.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// parseVectorUnlabeled parses: 1.23E+00  2.34E+00  3.45E-01
func parseVectorUnlabeled(line string) (astro.Vec3, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return astro.Vec3{}, fmt.Errorf("insufficient fields: %d", len(fields))
	}

	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return astro.Vec3{}, err
		}
		vals[i] = v
	}
	return astro.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// formatHorizonsTime formats a time for Horizons API.
func formatHorizonsTime(t time.Time) string {
	return t.UTC().Format(horizonsTimeLayout)
}
