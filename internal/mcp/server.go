package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"pokedex/internal/catalog"
)

type Server struct {
	cat      *catalog.Catalog
	pageSize int
	mcp      *sdk.Server
}

func NewServer(cat *catalog.Catalog, pageSize int, version string) *Server {
	s := &Server{
		cat:      cat,
		pageSize: pageSize,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "pokedex",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
