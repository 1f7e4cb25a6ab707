package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/cmd/signpost/commands"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SIGNPOST_ROUTES", "")
	t.Setenv("SIGNPOST_MODE", "")
	t.Setenv("SIGNPOST_BASE", "")

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	root := commands.NewRoot()
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	// Act
	out, err := run(t, "check")

	// Assert
	require.NoError(t, err)
	require.Equal(t, `mode: history
fallback: NotFound
1. / Home (Home)
2. /cyk CYK (CYK)
3. /fsm FSM (FSM)
ok: 3 routes
`, out)
}

func TestCheckBadFile(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
[[routes]]
path = "/a"
name = "A"
view = "home"

[[routes]]
path = "/a/"
name = "B"
view = "cyk"
`), 0o600))

	// Act
	_, err := run(t, "check", "--routes", p)

	// Assert
	require.ErrorIs(t, err, signpost.ErrBadConfig)
}

func TestResolve(t *testing.T) {
	// Act
	out, err := run(t, "resolve", "/", "/cyk/", "/fsm?x=1", "/nope")

	// Assert
	require.NoError(t, err)
	require.Equal(t, `/ -> Home (Home)
/cyk/ -> CYK (CYK)
/fsm?x=1 -> FSM (FSM)
/nope -> no match
`, out)
}

func TestResolveParams(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
routes:
  - path: "/fsm/:machine/:state"
    name: State
    view: fsm
`), 0o600))

	// Act
	out, err := run(t, "--routes", p, "resolve", "/fsm/dfa/q0")

	// Assert
	require.NoError(t, err)
	require.Equal(t, "/fsm/dfa/q0 -> State (FSM) {machine=dfa, state=q0}\n", out)

	// Act
	out, err = run(t, "--routes", p, "path-for", "State", "--param", "machine=dfa", "--param", "state=q 1")

	// Assert
	require.NoError(t, err)
	require.Equal(t, "State -> /fsm/dfa/q%201\n", out)
}

func TestPathFor(t *testing.T) {
	// Act
	out, err := run(t, "path-for", "CYK", "Home")

	// Assert
	require.NoError(t, err)
	require.Equal(t, "CYK -> /cyk\nHome -> /\n", out)

	// Act
	_, err = run(t, "path-for", "Parser")

	// Assert
	require.ErrorIs(t, err, signpost.ErrNotExist)

	// Act
	_, err = run(t, "path-for", "CYK", "--param", "oops")

	// Assert
	require.ErrorIs(t, err, signpost.ErrNotValid)
}

func TestWalk(t *testing.T) {
	// Act
	out, err := run(t, "walk", "/cyk?word=ab", "/fsm", "<", "<", "<", ">")

	// Assert
	require.NoError(t, err)
	require.Equal(t, `== start
# Automata Workbench

Pick a tool: CYK parsing or FSM minimization.
address: /
== /cyk?word=ab
# CYK Parser

Check whether a grammar in Chomsky normal form derives a word.
address: /cyk?word=ab
== /fsm
# FSM Minimizer

Partition the states of a machine into equivalence classes.
address: /fsm
== <
# CYK Parser

Check whether a grammar in Chomsky normal form derives a word.
address: /cyk?word=ab
== <
# Automata Workbench

Pick a tool: CYK parsing or FSM minimization.
address: /
== <
no history in that direction
# Automata Workbench

Pick a tool: CYK parsing or FSM minimization.
address: /
== >
# CYK Parser

Check whether a grammar in Chomsky normal form derives a word.
address: /cyk?word=ab
`, out)
}

func TestWalkHashFallback(t *testing.T) {
	// Act
	out, err := run(t, "--mode", "hash", "--base", "/app", "walk", "/app/#/fsm", "/missing")

	// Assert
	require.NoError(t, err)
	require.Contains(t, out, "== /app/#/fsm\n# FSM Minimizer")
	require.Contains(t, out, "address: /app/#/fsm\n")
	require.Contains(t, out, "== /missing\n# Not Found")
	require.Contains(t, out, "address: /app/#/missing\n")
}
