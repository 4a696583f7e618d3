package prayertimes

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/ramadanuz/taqvo/internal/ramadan"
	"github.com/ramadanuz/taqvo/pkg/dateutil"
)

// Unknown is the sentinel for a prayer time that could not be resolved.
// Callers must treat it as "unknown", never as a sortable clock value.
const Unknown = "--:--"

// Timings carries the five daily prayer clock strings for one date, plus the
// sahar/iftar display aliases. Every field may hold the Unknown sentinel.
type Timings struct {
	Date    dateutil.DateKey `json:"date"`
	Fajr    string           `json:"fajr"`
	Dhuhr   string           `json:"dhuhr"`
	Asr     string           `json:"asr"`
	Maghrib string           `json:"maghrib"`
	Isha    string           `json:"isha"`
}

// Sahar is the pre-dawn meal cutoff, which coincides with Fajr.
func (t Timings) Sahar() string { return t.Fajr }

// Iftar is the fast-breaking time, which coincides with Maghrib.
func (t Timings) Iftar() string { return t.Maghrib }

func (t Timings) ForPrayer(key string) string {
	switch key {
	case "fajr":
		return t.Fajr
	case "dhuhr":
		return t.Dhuhr
	case "asr":
		return t.Asr
	case "maghrib":
		return t.Maghrib
	case "isha":
		return t.Isha
	}
	return Unknown
}

// Unavailable builds the all-sentinel Timings for a date.
func Unavailable(date dateutil.DateKey) Timings {
	return Timings{
		Date:    date,
		Fajr:    Unknown,
		Dhuhr:   Unknown,
		Asr:     Unknown,
		Maghrib: Unknown,
		Isha:    Unknown,
	}
}

type ProviderI interface {
	// Resolves the five prayer timings for a date. Unavailability of the
	// upstream source degrades to the Unknown sentinel, never to an error.
	FetchTimings(ctx context.Context, date dateutil.DateKey) Timings
}

const (
	defaultBaseURL = "https://api.aladhan.com/v1"
	// Calculation method passed to the upstream source.
	calcMethod     = 2
	requestTimeout = 10 * time.Second
)

type ClientOpts struct {
	City         string
	Country      string
	Timezone     string
	ShiftDays    int
	RamadanStart dateutil.DateKey
	// BaseURL overrides the upstream endpoint. Tests point it at a local server.
	BaseURL string
}

// Client fetches monthly prayer timetables from the AlAdhan calendar API and
// extracts the row for a single date.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	city         string
	country      string
	timezone     string
	shiftDays    int
	ramadanStart dateutil.DateKey
}

func NewClient(opts ClientOpts) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		baseURL:      strings.TrimRight(baseURL, "/"),
		city:         opts.City,
		country:      opts.Country,
		timezone:     opts.Timezone,
		shiftDays:    opts.ShiftDays,
		ramadanStart: opts.RamadanStart,
	}
}

type calendarTimings struct {
	Fajr    string `json:"Fajr"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type calendarRow struct {
	Timings calendarTimings `json:"timings"`
	Date    struct {
		Gregorian struct {
			Date string `json:"date"`
		} `json:"gregorian"`
	} `json:"date"`
}

type calendarResponse struct {
	Code int           `json:"code"`
	Data []calendarRow `json:"data"`
}

// FetchTimings resolves the timings for a date. Dates outside the Ramadan
// window short-circuit to the sentinel without any network I/O. The source
// date may be shifted by the configured day offset to correct for timetable
// lag; the row lookup uses the shifted date while the returned Timings keep
// the requested one.
func (c *Client) FetchTimings(ctx context.Context, date dateutil.DateKey) Timings {
	if !ramadan.WithinRange(date, c.ramadanStart) {
		return Unavailable(date)
	}

	sourceDate := dateutil.AddDays(date, c.shiftDays)
	yearText, monthText, ok := splitYearMonth(sourceDate)
	if !ok {
		return Unavailable(date)
	}

	query := url.Values{}
	query.Set("city", c.city)
	query.Set("country", c.country)
	query.Set("method", strconv.Itoa(calcMethod))
	query.Set("timezonestring", c.timezone)
	endpoint := c.baseURL + "/calendarByCity/" + yearText + "/" + monthText + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Unavailable(date)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Unavailable(date)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Unavailable(date)
	}

	var payload calendarResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Unavailable(date)
	}

	wanted := toUpstreamDate(sourceDate)
	for _, row := range payload.Data {
		if row.Date.Gregorian.Date != wanted {
			continue
		}
		return Timings{
			Date:    date,
			Fajr:    firstToken(row.Timings.Fajr),
			Dhuhr:   firstToken(row.Timings.Dhuhr),
			Asr:     firstToken(row.Timings.Asr),
			Maghrib: firstToken(row.Timings.Maghrib),
			Isha:    firstToken(row.Timings.Isha),
		}
	}
	return Unavailable(date)
}

// firstToken strips trailing metadata such as "(+05)" timezone annotations.
func firstToken(value string) string {
	if value == "" {
		return Unknown
	}
	token, _, _ := strings.Cut(value, " ")
	if token == "" {
		return Unknown
	}
	return token
}

// toUpstreamDate converts YYYY-MM-DD to the DD-MM-YYYY form the source uses.
func toUpstreamDate(date dateutil.DateKey) string {
	parts := strings.SplitN(string(date), "-", 3)
	if len(parts) != 3 {
		return string(date)
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

func splitYearMonth(date dateutil.DateKey) (string, string, bool) {
	parts := strings.SplitN(string(date), "-", 3)
	if len(parts) != 3 {
		return "", "", false
	}
	// Trim the leading zero so the path segment matches the upstream route.
	monthNumber, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", false
	}
	return parts[0], strconv.Itoa(monthNumber), true
}
