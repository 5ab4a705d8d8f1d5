package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/jedib0t/go-pretty/v6/table"
)

// session runs script lines against one tree and writes the answers to out.
type session struct {
	tree   *Trees.SplayTree[int]
	backup *Trees.SplayTree[int] //last clone taken with the clone command.
	out    io.Writer
	log    *slog.Logger
}

func newSession(out io.Writer, log *slog.Logger) *session {
	return &session{tree: Trees.New[int](), out: out, log: log}
}

// runScript executes every non blank line of r, stopping at the first failing one.
// Lines starting with # are comments.
func (s *session) runScript(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

func (s *session) exec(line string) error {
	f := strings.Fields(line)
	cmd, args := strings.ToLower(f[0]), f[1:]
	s.log.Debug("exec", "cmd", cmd, "args", args)
	switch cmd {
	case "insert", "remove", "contains":
		if len(args) == 0 {
			return fmt.Errorf("%s needs at least one key", cmd)
		}
		for _, a := range args {
			k, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("parsing key %q: %w", a, err)
			}
			s.key(cmd, k)
		}
	case "undo":
		if s.tree.Undo() {
			fmt.Fprintln(s.out, "undone")
		} else {
			fmt.Fprintln(s.out, "nothing to undo")
		}
	case "inorder":
		s.seq("inorder", s.tree.InOrder())
	case "preorder":
		s.seq("preorder", s.tree.PreOrder())
	case "postorder":
		s.seq("postorder", s.tree.PostOrder())
	case "levelorder":
		s.seq("levelorder", s.tree.LevelOrder())
	case "print":
		fmt.Fprint(s.out, s.tree.String())
	case "clone":
		s.backup = s.tree.Clone()
		fmt.Fprintln(s.out, "cloned")
	case "equals":
		fmt.Fprintln(s.out, s.backup != nil && s.tree.Equals(s.backup))
	case "check":
		if err := s.tree.Check(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "ok")
	case "stats":
		s.stats()
	case "clear":
		s.tree.Clear()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (s *session) key(cmd string, k int) {
	var ok bool
	switch cmd {
	case "insert":
		ok = s.tree.Insert(k)
		s.log.Info("insert", "key", k, "created", ok, "size", s.tree.Size())
		if !ok {
			fmt.Fprintf(s.out, "%d already present\n", k)
		}
		return
	case "remove":
		ok = s.tree.Remove(k)
		s.log.Info("remove", "key", k, "removed", ok, "size", s.tree.Size())
	case "contains":
		ok = s.tree.Contains(k)
	}
	fmt.Fprintf(s.out, "%s %d: %v\n", cmd, k, ok)
}

func (s *session) seq(name string, vs iter.Seq[int]) {
	var sb strings.Builder
	for v := range vs {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	fmt.Fprintf(s.out, "%s: %s\n", name, sb.String())
}

func (s *session) stats() {
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("splay tree")
	t.AppendRow(table.Row{"size", s.tree.Size()})
	t.AppendRow(table.Row{"height", s.tree.Height()})
	if r, ok := s.tree.Root(); ok {
		t.AppendRow(table.Row{"root", r})
	} else {
		t.AppendRow(table.Row{"root", "-"})
	}
	if v, ok := s.tree.Minimum(); ok {
		t.AppendRow(table.Row{"min", v})
	}
	if v, ok := s.tree.Maximum(); ok {
		t.AppendRow(table.Row{"max", v})
	}
	t.AppendRow(table.Row{"can undo", s.tree.CanUndo()})
	t.Render()
}
