package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/omni-scout/internal/models"
	"github.com/pribylovaa/omni-scout/internal/ratelimit"
)

// memJournal — журнал в памяти для проверки «одно событие на прогон».
type memJournal struct {
	mu     sync.Mutex
	events []string
}

func (j *memJournal) Event(_ context.Context, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, message)
}

func (j *memJournal) all() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.events...)
}

// echoParse — парсер, кладущий тело ответа в Title единственной записи.
func echoParse(_ Descriptor, body string) ([]models.Record, error) {
	return []models.Record{{Title: body}}, nil
}

func TestCollect_AllSucceed_OneGroupPerDescriptor(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "body-"+r.URL.Path)
	}))
	defer srv.Close()

	descs := []Descriptor{
		{Key: "a", URL: srv.URL + "/a"},
		{Key: "b", URL: srv.URL + "/b"},
		{Key: "c", URL: srv.URL + "/c"},
	}

	journal := &memJournal{}
	c := New(srv.Client(), nil, journal)

	groups, err := c.Collect(context.Background(), descs, echoParse)
	require.NoError(t, err)
	require.Len(t, groups, len(descs))

	for i, g := range groups {
		require.Equal(t, descs[i].Key, g.Desc.Key)
		require.Len(t, g.Records, 1)
		require.Equal(t, "body-/"+descs[i].Key, g.Records[0].Title)
	}

	events := journal.all()
	require.Len(t, events, 1)
	require.Contains(t, events[0], "collect ok: 3 groups")
}

func TestCollect_EmptyInput_NoNetworkActivity(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := New(srv.Client(), nil, nil)

	groups, err := c.Collect(context.Background(), nil, echoParse)
	require.ErrorIs(t, err, ErrNoDescriptors)
	require.Nil(t, groups)
	require.Zero(t, calls.Load())
}

// TestCollect_SingleFailure_FailsWholeBatch — один сбойный дескриптор из N
// проваливает прогон целиком, но «соседи» доводят попытки до конца.
func TestCollect_SingleFailure_FailsWholeBatch(t *testing.T) {
	t.Parallel()

	var served atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served.Add(1)
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	descs := []Descriptor{
		{Key: "good-1", URL: srv.URL + "/one"},
		{Key: "broken-feed", URL: srv.URL + "/bad"},
		{Key: "good-2", URL: srv.URL + "/two"},
	}

	journal := &memJournal{}
	c := New(srv.Client(), nil, journal)

	groups, err := c.Collect(context.Background(), descs, echoParse)
	require.Error(t, err)
	require.Nil(t, groups)
	require.Contains(t, err.Error(), "broken-feed")
	require.Contains(t, err.Error(), "status=500")
	require.EqualValues(t, 3, served.Load())

	events := journal.all()
	require.Len(t, events, 1)
	require.Contains(t, events[0], "collect failed")
}

// TestCollect_ParseFailure_TreatedAsDescriptorFailure — ошибка Normalizer
// эквивалентна транспортной: прогон проваливается с префиксом Key.
func TestCollect_ParseFailure_TreatedAsDescriptorFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, r.URL.Path)
	}))
	defer srv.Close()

	descs := []Descriptor{
		{Key: "ok", URL: srv.URL + "/ok"},
		{Key: "mangled", URL: srv.URL + "/mangled"},
	}

	parse := func(d Descriptor, body string) ([]models.Record, error) {
		if d.Key == "mangled" {
			return nil, errors.New("unexpected EOF")
		}
		return nil, nil
	}

	c := New(srv.Client(), nil, nil)

	groups, err := c.Collect(context.Background(), descs, parse)
	require.Error(t, err)
	require.Nil(t, groups)
	require.Contains(t, err.Error(), "mangled: parse failed (unexpected EOF)")
}

// TestCollect_MultipleFailures_Joined — все сбои перечислены через "; ".
func TestCollect_MultipleFailures_Joined(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	descs := []Descriptor{
		{Key: "first", URL: srv.URL + "/1"},
		{Key: "second", URL: srv.URL + "/2"},
	}

	c := New(srv.Client(), nil, nil)

	_, err := c.Collect(context.Background(), descs, echoParse)
	require.Error(t, err)
	require.Contains(t, err.Error(), "first: ")
	require.Contains(t, err.Error(), "second: ")
	require.Contains(t, err.Error(), "; ")
}

// TestCollect_LimiterSerializesChannel — общий лимитер растягивает прогон
// минимум на (N-1)*interval.
func TestCollect_LimiterSerializesChannel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	const interval = 80 * time.Millisecond

	descs := []Descriptor{
		{Key: "a", URL: srv.URL},
		{Key: "b", URL: srv.URL},
		{Key: "c", URL: srv.URL},
	}

	c := New(srv.Client(), ratelimit.New(interval), nil)

	start := time.Now()
	_, err := c.Collect(context.Background(), descs, echoParse)
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 2*interval)
}

// TestCollect_GateCapsConcurrency — без лимитера одновременно в полёте
// не больше min(N, 16) запросов.
func TestCollect_GateCapsConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		cur := inFlight.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	descs := make([]Descriptor, 0, 24)
	for i := 0; i < 24; i++ {
		descs = append(descs, Descriptor{Key: fmt.Sprintf("k%d", i), URL: srv.URL})
	}

	c := New(srv.Client(), nil, nil)

	_, err := c.Collect(context.Background(), descs, echoParse)
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int64(16))
}
