// Package lavaworld answers connectivity queries between rectangular islands
// floating on a sea of lava.
//
// What is lavaworld?
//
//	Two islands are linked when their closed rectangles touch or overlap, and
//	linking is transitive: a chain of touching islands connects its ends.
//	Given N islands and Q queries "row col", lavaworld prints YES or NO per
//	query.
//
// Under the hood the work is split across small packages:
//
//	geometry/      Rect and the ConnectsWith overlap predicate
//	core/          index-based undirected graph (vertex arena + neighbor ids)
//	adjacency/     incremental O(N²) builder of the island graph
//	bfs/           breadth-first walker with hooks and cancellation
//	dfs/           depth-first walker used to cross-check answers
//	components/    connected-component labelling on top of bfs
//	reachability/  flat (N+1)×(N+1) boolean table, O(1) queries
//	problem/       text format: parse input, encode problems, write answers
//	solver/        the pipeline tying it all together
//	generator/     seeded random problems for testing
//	config/        viper-backed settings (file + LAVAWORLD_* env)
//	logger/        zap-backed structured logging to stderr
//	commands/      cobra command tree of the CLI
//
// Quick ASCII example:
//
//	┌──┬──┐      ┌──┐
//	│ 1│ 2│      │ 3│
//	└──┴──┘      └──┘
//
//	1 and 2 share an edge and are linked; 3 stands alone.
//
//	go install github.com/katalvlaran/lavaworld/cmd/lavaworld@latest
//	lavaworld < input.txt
package lavaworld
