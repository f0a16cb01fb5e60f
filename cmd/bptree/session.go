package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	bplus "bplusindex/bplustree"
	"bplusindex/render"
)

const usage = `commands:
  insert <k>...     insert keys (duplicates allowed)
  delete <k>...     delete the oldest occurrence of each key
  deltie <k> <tie>  delete one exact entry
  find <k>          report whether k is stored and its oldest tie
  count <k>         number of stored occurrences of k
  traverse          keys in order
  entries           key#tie pairs in order
  levels            per-level dump
  tree              indented outline
  stats             size, height, nodes, render cache
  check             validate every invariant
  reset [degree]    start over with an empty tree
  exit`

var errUsage = errors.New("wrong arguments, see help")

type session struct {
	tree  *bplus.BPlusTree[int64]
	cache *render.Cache
	log   *zap.Logger
	out   io.Writer
}

func newSession(degree int, cache *render.Cache, log *zap.Logger, out io.Writer) (*session, error) {
	s := &session{cache: cache, log: log, out: out}
	if err := s.reset(degree); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) reset(degree int) error {
	tree, err := bplus.NewBPlusTree[int64](degree, bplus.WithLogger(s.log.Named("tree")))
	if err != nil {
		return err
	}
	s.tree = tree
	return nil
}

// repl reads commands until exit or EOF (Ctrl+D).
func (s *session) repl(in io.Reader, prompt bool) {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(s.out, "bptree> ")
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			break
		}
		if line == "" {
			continue
		}
		if err := s.exec(line); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(s.out, usage)

	case "insert", "delete":
		if len(args) == 0 {
			return errUsage
		}
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if cmd == "insert" {
				tie := s.tree.Insert(k)
				fmt.Fprintf(s.out, "inserted %d#%d\n", k, tie)
			} else if s.tree.Delete(k) {
				fmt.Fprintf(s.out, "deleted %d\n", k)
			} else {
				fmt.Fprintf(s.out, "%d not found\n", k)
			}
		}

	case "deltie":
		if len(args) != 2 {
			return errUsage
		}
		keys, err := parseKeys(args[:1])
		if err != nil {
			return err
		}
		tie, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid tie %q: %w", args[1], err)
		}
		if s.tree.DeleteEntry(keys[0], tie) {
			fmt.Fprintf(s.out, "deleted %d#%d\n", keys[0], tie)
		} else {
			fmt.Fprintf(s.out, "%d#%d not found\n", keys[0], tie)
		}

	case "find", "count":
		if len(args) != 1 {
			return errUsage
		}
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}
		if cmd == "count" {
			fmt.Fprintf(s.out, "%d\n", s.tree.Count(keys[0]))
		} else if tie, ok := s.tree.FindKey(keys[0]); ok {
			fmt.Fprintf(s.out, "found %d#%d\n", keys[0], tie)
		} else {
			fmt.Fprintf(s.out, "%d not found\n", keys[0])
		}

	case "traverse":
		fmt.Fprintln(s.out, s.tree.Traverse())

	case "entries":
		parts := make([]string, 0, s.tree.Len())
		for _, e := range s.tree.Entries() {
			parts = append(parts, fmt.Sprintf("%d#%d", e.Key, e.Tie))
		}
		fmt.Fprintf(s.out, "[%s]\n", strings.Join(parts, " "))

	case "levels", "tree":
		view := render.Levels
		if cmd == "tree" {
			view = render.Outline
		}
		text, err := s.cache.Render(s.tree, view)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, text)

	case "stats":
		st := s.cache.Stats()
		fmt.Fprintf(s.out, "degree=%d entries=%d height=%d nodes=%d version=%d\n",
			s.tree.Degree(), s.tree.Len(), s.tree.Height(), s.tree.NodeCount(), s.tree.Version())
		fmt.Fprintf(s.out, "render cache: hits=%d misses=%d added=%s\n",
			st.Hits, st.Misses, humanize.Bytes(st.CostAdded))

	case "check":
		if err := s.tree.Check(); err != nil {
			s.log.Error("tree check failed", zap.Error(err))
			return err
		}
		fmt.Fprintln(s.out, "ok")

	case "reset":
		degree := s.tree.Degree()
		if len(args) > 1 {
			return errUsage
		}
		if len(args) == 1 {
			d, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid degree %q: %w", args[0], err)
			}
			degree = d
		}
		if err := s.reset(degree); err != nil {
			return err
		}
		s.log.Info("tree reset", zap.Int("degree", degree))
		fmt.Fprintf(s.out, "empty tree, degree %d\n", degree)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func parseKeys(args []string) ([]int64, error) {
	keys := make([]int64, len(args))
	for i, a := range args {
		k, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", a, err)
		}
		keys[i] = k
	}
	return keys, nil
}
