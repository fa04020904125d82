package api

func (s *Server) registerRoutes() {
	if s == nil || s.router == nil {
		return
	}

	s.router.GET("/health", s.handleHealth)
	s.router.GET("/results", s.handleLatestResults)
	s.router.GET("/results/:run_id", s.handleRunResults)
	s.router.GET("/runs", s.handleListRuns)
}
