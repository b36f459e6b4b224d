package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleCreateArgs(extra ...string) []string {
	args := []string{
		"schedule", "create",
		"--unit", "u1",
		"--rt", "rt1",
		"--kegiatan", "k1",
		"--pengurus", "p1",
		"--day", "1",
		"--start", "08:00",
		"--end", "09:30",
	}
	return append(args, extra...)
}

func TestScheduleCreate_NoConflicts(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/v1/schedules/check-conflicts":
			_, _ = w.Write([]byte(`{"message":"ok","data":{"has_conflict":false,"conflicts":[]}}`))
		case "/api/v1/schedules":
			_, _ = w.Write([]byte(`{"message":"ok","data":{"id":"sch1"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEKOLAH_HOST", srv.URL)

	out, err := runCommand(t, scheduleCreateArgs()...)
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule created (sch1)")
	assert.Equal(t, []string{"/api/v1/schedules/check-conflicts", "/api/v1/schedules"}, paths)
}

func TestScheduleCreate_ConflictBlocks(t *testing.T) {
	var createCalled bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/schedules/check-conflicts":
			_, _ = w.Write([]byte(`{"message":"ok","data":{"has_conflict":true,"conflicts":[
				{"type":"room","message":"room occupied","conflicts_with":{"id":"sch9"}}]}}`))
		case "/api/v1/schedules":
			createCalled = true
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEKOLAH_HOST", srv.URL)

	_, err := runCommand(t, scheduleCreateArgs()...)
	require.Error(t, err)
	assert.Equal(t, "1 schedule conflict(s): use --force to override", err.Error())
	assert.False(t, createCalled)
}

func TestScheduleCreate_ForceSkipsCheck(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok","data":{"id":"sch2"}}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEKOLAH_HOST", srv.URL)

	out, err := runCommand(t, scheduleCreateArgs("--force")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule created (sch2)")
	assert.Equal(t, []string{"/api/v1/schedules"}, paths)
}

func TestScheduleCheck_NoConflicts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok","data":{"has_conflict":false,"conflicts":[]}}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEKOLAH_HOST", srv.URL)

	out, err := runCommand(t, "schedule", "check",
		"--unit", "u1", "--day", "2", "--start", "10:00", "--end", "11:00")
	require.NoError(t, err)
	assert.Contains(t, out, "No conflicts")
}

func TestScheduleCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/schedules/copy-from-rt", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok","data":[{"id":"s1"},{"id":"s2"}]}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEKOLAH_HOST", srv.URL)

	out, err := runCommand(t, "schedule", "copy", "--from", "rtA", "--to", "rtB", "--unit", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "2 schedule(s) copied to RT rtB")
}
