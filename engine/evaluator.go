// Package engine implements the demand-driven, memoized graph evaluator:
// given a parsed dgraph.Graph, it resolves node outputs by recursive
// argument resolution, operation dispatch, and boundary type checking,
// caching each node's result exactly once.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/flowdag/flowdag/cachestore"
	"github.com/flowdag/flowdag/cachestore/memstore"
	"github.com/flowdag/flowdag/dgraph"
	"github.com/flowdag/flowdag/dtype"
	"github.com/flowdag/flowdag/dvalue"
	"github.com/flowdag/flowdag/flowerr"
	"github.com/flowdag/flowdag/log"
	"github.com/flowdag/flowdag/opregistry"
	"github.com/flowdag/flowdag/runid"
)

// Option configures an Evaluator.
type Option func(*options)

type options struct {
	registry *opregistry.Registry
	store    cachestore.Store
	graphID  string
	runID    string
}

// WithRegistry overrides the operation registry an Evaluator dispatches
// through. The default is opregistry.Default, the process-wide registry
// built-in operations register themselves into via init().
func WithRegistry(r *opregistry.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithStore attaches a durable cachestore.Store that mirrors successful
// node writes and warm-starts the in-process cache on the first Resolve or
// Run call.
// graphID identifies the program across runs; computing it is the
// caller's concern.
func WithStore(store cachestore.Store, graphID string) Option {
	return func(o *options) {
		o.store = store
		o.graphID = graphID
	}
}

// WithRunID sets the correlation id recorded in persisted cache entries.
// If unset, a fresh one is generated via runid.New(). Log lines and
// diagnostics do not include it.
func WithRunID(id string) Option {
	return func(o *options) { o.runID = id }
}

// Evaluator resolves node outputs over a single Graph. It is not safe for
// concurrent use: the cache, type cache, and visiting set it owns are
// exclusive to one evaluator, matching the single-threaded evaluation
// model this package implements.
type Evaluator struct {
	graph     dgraph.Graph
	registry  *opregistry.Registry
	cache     map[string]any
	typeCache map[string]dtype.Type
	visiting  map[string]struct{}

	store   cachestore.Store
	graphID string
	runID   string
	warmed  bool
}

// New constructs an Evaluator over graph. When no store is configured via
// WithStore, a private memstore.Store backs cache persistence: this keeps
// every Evaluator mirroring its writes through the same cachestore.Store
// contract, whether or not the caller asked for durability across process
// restarts.
func New(graph dgraph.Graph, opts ...Option) *Evaluator {
	o := options{registry: opregistry.Default, store: memstore.New(), graphID: "default"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = runid.New()
	}
	return &Evaluator{
		graph:     graph,
		registry:  o.registry,
		cache:     make(map[string]any),
		typeCache: make(map[string]dtype.Type),
		store:     o.store,
		graphID:   o.graphID,
		runID:     o.runID,
	}
}

// RunID returns the correlation id this Evaluator records in persisted
// cache entries.
func (e *Evaluator) RunID() string {
	return e.runID
}

// ensureWarmed loads the configured store's entries for this graph into the
// in-process cache exactly once. Bare node-id entries are re-verified
// against the node's current declared return type; a mismatch is dropped
// rather than trusted, per the stale-entry rejection rule.
func (e *Evaluator) ensureWarmed(ctx context.Context) {
	if e.warmed || e.store == nil {
		return
	}
	e.warmed = true

	entries, err := e.store.Load(ctx, e.graphID)
	if err != nil {
		log.Errorf("warm cache load for graph %s failed: %v", e.graphID, err)
		return
	}
	for key, entry := range entries {
		if isCompositeKey(key) {
			// Non-"out" port outputs carry no declared type to re-verify
			// against; trust the prior run's value as-is.
			e.cache[key] = entry.Value
			continue
		}
		node, ok := e.graph[key]
		if !ok || node.Returns == nil {
			e.cache[key] = entry.Value
			continue
		}
		if !node.Returns.Matches(entry.Value) {
			log.Debugf("discarding stale warm cache entry for node %s: no longer matches %s", key, node.Returns)
			continue
		}
		e.cache[key] = entry.Value
		e.typeCache[key] = *node.Returns
	}
}

// isCompositeKey reports whether key is a "<node-id>:<port>" composite
// cache key rather than a bare node-id.
func isCompositeKey(key string) bool {
	return strings.Contains(key, ":")
}

// persist mirrors a successful cache write to the configured store, if any.
// Store I/O failures are logged but never fail the evaluation that produced
// the value: persistence is an additive capability, not a correctness
// requirement of a single run.
func (e *Evaluator) persist(ctx context.Context, key string, value any) {
	if e.store == nil {
		return
	}
	entry := cachestore.Entry{Value: value, RunID: e.runID, Timestamp: time.Now().UnixNano()}
	if err := e.store.Save(ctx, e.graphID, key, entry); err != nil {
		log.Errorf("persisting cache entry %s for graph %s failed: %v", key, e.graphID, err)
	}
}

// Resolve evaluates a single node and returns its "out" value, or the
// first error encountered along its dependency chain. Each call begins a
// fresh visiting set, per the per-top-level-traversal cycle detection rule.
func (e *Evaluator) Resolve(ctx context.Context, nodeID string) (any, error) {
	e.ensureWarmed(ctx)
	e.visiting = make(map[string]struct{})
	return e.resolve(ctx, nodeID)
}

// Run evaluates every node in the graph (order unspecified) and writes one
// "Error: <message>" line per failing node to diagnostics. A failure on one
// node does not interrupt evaluation of the others.
func (e *Evaluator) Run(ctx context.Context, diagnostics io.Writer) {
	e.ensureWarmed(ctx)
	for nodeID := range e.graph {
		e.visiting = make(map[string]struct{})
		if _, err := e.resolve(ctx, nodeID); err != nil {
			log.Errorf("node %s: %v", nodeID, err)
			fmt.Fprintf(diagnostics, "Error: %s\n", err.Error())
		}
	}
}

// resolve implements the nine-step per-node evaluation procedure.
func (e *Evaluator) resolve(ctx context.Context, nodeID string) (any, error) {
	// 1. Cache lookup.
	if v, ok := e.cache[nodeID]; ok {
		log.Debugf("resolve %s: cache hit", nodeID)
		return v, nil
	}

	// 2. Cycle check.
	if _, ok := e.visiting[nodeID]; ok {
		return nil, &flowerr.CycleDetectedError{NodeID: nodeID}
	}
	// 3. Register on stack.
	e.visiting[nodeID] = struct{}{}

	// 4. Node lookup.
	node, ok := e.graph[nodeID]
	if !ok {
		return nil, &flowerr.NodeNotFoundError{NodeID: nodeID}
	}

	log.Debugf("resolve %s: op=%s", nodeID, node.Op)

	// 5. Argument resolution.
	inputs := make(map[string]any, len(node.Args))
	for port, raw := range node.Args {
		value, err := e.resolveArg(ctx, nodeID, port, raw)
		if err != nil {
			return nil, err
		}
		inputs[port] = value
	}

	// 6. Operation dispatch.
	op, ok := e.registry.Get(node.Op)
	if !ok {
		return nil, &flowerr.UnknownOperationError{Node: nodeID, Name: node.Op}
	}
	outputs, err := op.Execute(inputs)
	if err != nil {
		return nil, flowerr.WithNode(err, nodeID)
	}

	// 7. Return type check.
	out, hasOut := outputs["out"]
	if node.Returns != nil && hasOut {
		if !node.Returns.Matches(out) {
			return nil, &flowerr.InvalidValueError{
				Node:         nodeID,
				Port:         "out",
				ExpectedType: *node.Returns,
				ActualValue:  fmt.Sprintf("%v", out),
			}
		}
		e.typeCache[nodeID] = *node.Returns
	}

	// 8. Cache population.
	if hasOut {
		e.cache[nodeID] = out
		e.persist(ctx, nodeID, out)
	}
	for port, value := range outputs {
		if port == "out" {
			continue
		}
		key := nodeID + ":" + port
		e.cache[key] = value
		e.persist(ctx, key, value)
	}

	// 9. Produce result.
	if !hasOut {
		return nil, flowerr.WithNode(&flowerr.OperationError{
			Node:   flowerr.PlaceholderNode,
			Reason: "Operation produced no 'out' output",
		}, nodeID)
	}
	return out, nil
}

// resolveArg decodes and resolves a single argument port's typed value.
func (e *Evaluator) resolveArg(ctx context.Context, nodeID, port string, raw json.RawMessage) (any, error) {
	tv, err := dvalue.Decode(raw)
	if err != nil {
		return nil, &flowerr.MissingTypeAnnotationError{Node: nodeID, Port: port}
	}

	switch tv.Shape {
	case dvalue.Reference:
		resolved, err := e.resolve(ctx, tv.NodeID)
		if err != nil {
			return nil, err
		}
		if !tv.Declared.Matches(resolved) {
			actual := dtype.TAny
			if t, ok := e.typeCache[tv.NodeID]; ok {
				actual = t
			}
			return nil, &flowerr.TypeMismatchError{
				Node:     nodeID,
				Port:     port,
				Expected: tv.Declared,
				Actual:   actual,
			}
		}
		return resolved, nil
	case dvalue.Literal:
		if !tv.Declared.Matches(tv.Raw) {
			return nil, &flowerr.InvalidValueError{
				Node:         nodeID,
				Port:         port,
				ExpectedType: tv.Declared,
				ActualValue:  fmt.Sprintf("%v", tv.Raw),
			}
		}
		return tv.Raw, nil
	default:
		return nil, &flowerr.MissingTypeAnnotationError{Node: nodeID, Port: port}
	}
}
