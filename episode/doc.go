// Package episode drives one complete micromouse trial: a maze is generated
// with kruskal, checked against the pathfind oracle, optionally persisted,
// and then explored by a navigator until it converges or hits its step
// ceiling.
//
// Episodes share nothing but the configuration, so a batch runs them on
// separate goroutines. Each episode's grids stay confined to the goroutine
// that created them.
//
//	r := episode.NewRunner(cfg, episode.WithLogger(logger), episode.WithStore(s))
//	res, err := r.Run(ctx, 42)
//	fmt.Println(res.Converged, res.Optimality())
package episode
