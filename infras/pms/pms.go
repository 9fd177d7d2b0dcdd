package pms

//go:generate go run go.uber.org/mock/mockgen -source=./pms.go -destination=./mocks/pms_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"innsync/config"
	"innsync/infras/otel"
	"innsync/shared/constant"
)

const (
	otelAttrPath   = "pms.path"
	otelAttrStatus = "pms.status_code"
)

// Booking is the upstream booking payload.
type Booking struct {
	ID         int64   `json:"id"`
	ExternalID *string `json:"external_id"`
	RoomID     int64   `json:"room_id"`
	RoomTypeID *int64  `json:"room_type_id"`
	GuestIDs   []int64 `json:"guest_ids"`
	Arrival    *string `json:"arrival_date"`
	Departure  *string `json:"departure_date"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
}

// Room is the upstream room payload.
type Room struct {
	ID         int64   `json:"id"`
	Number     *string `json:"number"`
	Floor      *int    `json:"floor"`
	RoomTypeID *int64  `json:"room_type_id"`
}

// RoomType is the upstream room type payload.
type RoomType struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Guest is the upstream guest payload.
type Guest struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Client is the typed read-only PMS API client. Every call waits on the shared
// fixed-interval rate limiter before going to the network. A non-2xx response is an
// expected outcome and surfaces as ok=false, never as an error; only the changed-ID
// listing returns an error, because the whole run depends on it.
type Client interface {
	ListChangedBookingIDs(ctx context.Context, since string) ([]int64, error)
	GetBooking(ctx context.Context, id int64) (Booking, bool)
	GetRoom(ctx context.Context, id int64) (Room, bool)
	GetRoomType(ctx context.Context, id int64) (RoomType, bool)
	GetGuest(ctx context.Context, id int64) (Guest, bool)
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	maxRetry   uint64
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	delay := time.Duration(cfg.PMS.RateLimitDelayMS) * time.Millisecond

	return &clientImpl{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.PMS.TimeoutSeconds) * time.Second,
		},
		baseURL:  cfg.PMS.BaseURL,
		limiter:  rate.NewLimiter(rate.Every(delay), 1),
		maxRetry: uint64(cfg.PMS.MaxRetry),
		otel:     otl,
	}
}

type listResponse struct {
	Data []json.RawMessage `json:"data"`
}

func (c *clientImpl) ListChangedBookingIDs(ctx context.Context, since string) (ids []int64, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelPMSScopeName, constant.OtelPMSScopeName+".ListChangedBookingIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("updated_at.gt", since)

	body, status, err := c.do(ctx, "bookings?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to list changed bookings: %w", err)
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("failed to list changed bookings: unexpected status %d", status)
	}

	var listing listResponse
	if err = json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to decode changed booking listing: %w", err)
	}

	return normalizeIDs(listing.Data), nil
}

func (c *clientImpl) GetBooking(ctx context.Context, id int64) (Booking, bool) {
	var booking Booking

	ok := c.getJSON(ctx, "GetBooking", fmt.Sprintf("bookings/%d", id), &booking)

	return booking, ok && booking.ID != 0
}

func (c *clientImpl) GetRoom(ctx context.Context, id int64) (Room, bool) {
	var room Room

	ok := c.getJSON(ctx, "GetRoom", fmt.Sprintf("rooms/%d", id), &room)

	return room, ok && room.ID != 0
}

func (c *clientImpl) GetRoomType(ctx context.Context, id int64) (RoomType, bool) {
	var roomType RoomType

	ok := c.getJSON(ctx, "GetRoomType", fmt.Sprintf("room-types/%d", id), &roomType)

	return roomType, ok && roomType.ID != 0
}

func (c *clientImpl) GetGuest(ctx context.Context, id int64) (Guest, bool) {
	var guest Guest

	ok := c.getJSON(ctx, "GetGuest", fmt.Sprintf("guests/%d", id), &guest)

	return guest, ok && guest.ID != 0
}

func (c *clientImpl) getJSON(ctx context.Context, operation, path string, dest any) bool {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelPMSScopeName, constant.OtelPMSScopeName+"."+operation)
	defer scope.End()

	body, status, err := c.do(ctx, path)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("path", path).Msg("PMS request failed")

		return false
	}

	scope.SetAttribute(otelAttrStatus, status)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		log.Warn().Int("status", status).Str("path", path).Msg("PMS returned non-success status")

		return false
	}

	if err = json.Unmarshal(body, dest); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("path", path).Msg("failed to decode PMS response")

		return false
	}

	return true
}

// do issues a single rate-limited GET. Transport faults are retried with bounded
// exponential backoff; HTTP status handling is left to the caller.
func (c *clientImpl) do(ctx context.Context, path string) (body []byte, status int, err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelPMSScopeName, constant.OtelPMSScopeName+".do")
	defer scope.End()

	scope.SetAttribute(otelAttrPath, path)

	if err = c.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("rate limiter wait interrupted: %w", err)
	}

	operation := func() ([]byte, error) {
		request, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
		if reqErr != nil {
			return nil, backoff.Permanent(reqErr)
		}

		response, doErr := c.httpClient.Do(request)
		if doErr != nil {
			return nil, doErr
		}
		defer response.Body.Close()

		responseBody, readErr := io.ReadAll(response.Body)
		if readErr != nil {
			return nil, readErr
		}

		status = response.StatusCode

		return responseBody, nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetry), ctx)

	body, err = backoff.RetryWithData(operation, policy)
	if err != nil {
		return nil, 0, fmt.Errorf("PMS request failed after retries: %w", err)
	}

	return body, status, nil
}

// normalizeIDs flattens the changed-ID listing: entries may be raw numbers, numeric
// strings, or objects carrying an "id" field. Anything non-numeric is dropped, and
// duplicates collapse to the first occurrence.
func normalizeIDs(items []json.RawMessage) []int64 {
	seen := map[int64]struct{}{}
	ids := []int64{}

	for _, item := range items {
		id, ok := parseID(item)
		if !ok {
			continue
		}

		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

func parseID(item json.RawMessage) (int64, bool) {
	// A pointer target keeps JSON null from reading as a valid zero ID.
	var number *int64
	if err := json.Unmarshal(item, &number); err == nil && number != nil {
		return *number, true
	}

	var str string
	if err := json.Unmarshal(item, &str); err == nil {
		parsed, parseErr := strconv.ParseInt(str, 10, 64)

		return parsed, parseErr == nil
	}

	var object struct {
		ID *int64 `json:"id"`
	}

	if err := json.Unmarshal(item, &object); err == nil && object.ID != nil {
		return *object.ID, true
	}

	return 0, false
}
