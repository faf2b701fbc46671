package main

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/config"
	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/kruskal"
	"github.com/katalvlaran/parmst/transport"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()

	return out.String(), err
}

func generate(t *testing.T, format string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph."+format)
	out, err := execute(t, "generate", "-n", "300", "-k", "900", "--seed", "4", "--max-weight", "100",
		"-o", path, "--format", format)
	require.NoError(t, err)
	assert.Equal(t, "edges = 1199\n", out)

	return path
}

func TestRunAndSerialAgree(t *testing.T) {
	path := generate(t, "text")

	serial, err := execute(t, "serial", "-i", path, "--verify", "--print-edges=false")
	require.NoError(t, err)
	assert.Contains(t, serial, "Result: spanning tree\n")
	assert.Contains(t, serial, "Verified: OK\n")

	for _, strategy := range []string{"private", "shared"} {
		out, err := execute(t, "run", "-i", path, "-p", "4", "--strategy", strategy, "--verify")
		require.NoError(t, err, strategy)
		assert.Contains(t, out, "Worker 3: Processed edges: ", strategy)
		assert.Contains(t, out, "Verified: OK\n", strategy)
		assert.Equal(t, weightLine(t, serial), weightLine(t, out), strategy)
	}
}

// weightLine extracts the "Total weight of the MST" line from a report.
func weightLine(t *testing.T, out string) string {
	t.Helper()
	for _, line := range bytes.Split([]byte(out), []byte("\n")) {
		if bytes.HasPrefix(line, []byte("Total weight of the MST: ")) {
			return string(line)
		}
	}
	t.Fatalf("no weight line in %q", out)

	return ""
}

func TestRun_Binary(t *testing.T) {
	path := generate(t, "binary")

	out, err := execute(t, "run", "-i", path, "--format", "binary", "-p", "2", "--print-edges")
	require.NoError(t, err)
	assert.Contains(t, out, "Edges in the MST\nFrom, To, Weight\n")
	assert.Contains(t, out, "Number of edges in the MST: 299\n")
}

func TestRun_RPC(t *testing.T) {
	path := generate(t, "text")

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := transport.NewServer()
	done := make(chan error, 1)
	go func() { done <- srv.Serve(l) }()
	t.Cleanup(func() {
		require.NoError(t, srv.Close())
		require.NoError(t, <-done)
	})

	out, err := execute(t, "run", "-i", path, "-p", "3",
		"--transport", "rpc", "--peers", l.Addr().String(), "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Worker 2: ")
	assert.Contains(t, out, "Verified: OK\n")
}

func TestRun_Errors(t *testing.T) {
	path := generate(t, "text")

	_, err := execute(t, "run", "-i", path, "--strategy", "greedy")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "run", "-i", path, "--transport", "rpc")
	assert.ErrorContains(t, err, "needs peers")

	_, err = execute(t, "run", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = execute(t, "run", "-i", path, "-p", "5000")
	assert.ErrorContains(t, err, "exceeds edge count")
}

func TestPresent_CatchesWrongWeight(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{{0, 1, 4}, {1, 2, 3}, {0, 2, 5}})
	require.NoError(t, err)
	res := kruskal.Sequential(g)

	a := &app{cfg: config.Default(), log: zap.NewNop()}
	a.cfg.Verify = true

	var out bytes.Buffer
	require.NoError(t, a.present(&out, g, res, false))
	assert.Contains(t, out.String(), "Verified: OK\n")

	res.Weight++
	assert.ErrorIs(t, a.present(&out, g, res, false), errWeightMismatch)
}

func TestServeWorker_AlreadyCancelled(t *testing.T) {
	a := &app{cfg: config.Default(), log: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan error, 1)
	go func() { done <- a.serveWorker(ctx, "127.0.0.1:0") }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestServeWorker_StopsOnCancel(t *testing.T) {
	a := &app{cfg: config.Default(), log: zap.NewNop()}
	a.cfg.Metrics.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.serveWorker(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
