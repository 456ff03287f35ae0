package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"pokedex/internal/catalog"
)

type SearchPokedexInput struct {
	Types    []string `json:"types,omitempty" jsonschema:"restrict to records carrying one of these types"`
	Search   string   `json:"search,omitempty" jsonschema:"case-insensitive name substring"`
	Page     int      `json:"page,omitempty" jsonschema:"zero-based page index"`
	PageSize int      `json:"page_size,omitempty" jsonschema:"records per page"`
}

type GetPokemonInput struct {
	ID int `json:"id" jsonschema:"record id"`
}

type CreatePokemonInput struct {
	Name      string   `json:"name" jsonschema:"record name"`
	Types     []string `json:"types" jsonschema:"at least one type name"`
	Sprite    string   `json:"sprite,omitempty" jsonschema:"sprite URL, defaulted from the new id when omitted"`
	Height    *int     `json:"height" jsonschema:"height in decimetres"`
	Weight    *int     `json:"weight" jsonschema:"weight in hectograms"`
	Abilities []string `json:"abilities,omitempty" jsonschema:"ability names"`
}

type UpdatePokemonInput struct {
	ID        int      `json:"id" jsonschema:"record id"`
	Name      string   `json:"name" jsonschema:"record name"`
	Types     []string `json:"types" jsonschema:"at least one type name"`
	Sprite    string   `json:"sprite,omitempty" jsonschema:"sprite URL"`
	Height    *int     `json:"height,omitempty" jsonschema:"height in decimetres, kept when omitted"`
	Weight    *int     `json:"weight,omitempty" jsonschema:"weight in hectograms, kept when omitted"`
	Abilities []string `json:"abilities,omitempty" jsonschema:"ability names, kept when omitted"`
}

type DeletePokemonInput struct {
	ID      int  `json:"id" jsonschema:"record id"`
	Confirm bool `json:"confirm" jsonschema:"must be true; deletion is destructive"`
}

type ListTypesInput struct{}

type ResyncPokedexInput struct {
	Confirm bool `json:"confirm" jsonschema:"must be true; local edits are discarded"`
}

type RecordOutput struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	Sprite    string   `json:"sprite"`
	Height    *int     `json:"height,omitempty"`
	Weight    *int     `json:"weight,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
}

type ViewOutput struct {
	Records    []RecordOutput `json:"records"`
	TotalCount int            `json:"total_count"`
	PageIndex  int            `json:"page_index"`
	PageCount  int            `json:"page_count"`
}

type CreatePokemonOutput struct {
	ID int `json:"id"`
}

type UpdatePokemonOutput struct {
	ID int `json:"id"`
}

type DeletePokemonOutput struct {
	ID int `json:"id"`
}

type ListTypesOutput struct {
	Types []string `json:"types"`
}

type ResyncPokedexOutput struct {
	Count int `json:"count"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_pokedex",
		Description: "List catalog records with type filters, name search, and pagination",
	}, s.handleSearchPokedex)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_pokemon",
		Description: "Retrieve one record by id",
	}, s.handleGetPokemon)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "create_pokemon",
		Description: "Add a record to the local catalog",
	}, s.handleCreatePokemon)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "update_pokemon",
		Description: "Edit a record in the local catalog",
	}, s.handleUpdatePokemon)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "delete_pokemon",
		Description: "Remove a record from the local catalog",
	}, s.handleDeletePokemon)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_types",
		Description: "Return the type vocabulary observed across the catalog",
	}, s.handleListTypes)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "resync_pokedex",
		Description: "Discard the local snapshot and re-hydrate from the remote API",
	}, s.handleResyncPokedex)
}

func (s *Server) handleSearchPokedex(ctx context.Context, req *sdk.CallToolRequest, input SearchPokedexInput) (*sdk.CallToolResult, ViewOutput, error) {
	records, err := s.cat.Load(ctx)
	if err != nil {
		return nil, ViewOutput{}, err
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.pageSize
	}

	view := catalog.DeriveView(records, input.Types, input.Search, input.Page, pageSize)

	output := ViewOutput{
		Records:    make([]RecordOutput, 0, len(view.Records)),
		TotalCount: view.TotalCount,
		PageIndex:  view.PageIndex,
		PageCount:  view.PageCount,
	}
	for _, r := range view.Records {
		output.Records = append(output.Records, recordOutput(r))
	}
	return nil, output, nil
}

func (s *Server) handleGetPokemon(ctx context.Context, req *sdk.CallToolRequest, input GetPokemonInput) (*sdk.CallToolResult, RecordOutput, error) {
	if input.ID <= 0 {
		return nil, RecordOutput{}, fmt.Errorf("id is required")
	}
	rec, err := s.cat.Get(ctx, input.ID)
	if err != nil {
		return nil, RecordOutput{}, err
	}
	return nil, recordOutput(rec), nil
}

func (s *Server) handleCreatePokemon(ctx context.Context, req *sdk.CallToolRequest, input CreatePokemonInput) (*sdk.CallToolResult, CreatePokemonOutput, error) {
	id, err := s.cat.Create(ctx, catalog.Draft{
		Name:      input.Name,
		Types:     input.Types,
		Sprite:    input.Sprite,
		Height:    input.Height,
		Weight:    input.Weight,
		Abilities: input.Abilities,
	})
	if err != nil {
		return nil, CreatePokemonOutput{}, err
	}
	return nil, CreatePokemonOutput{ID: id}, nil
}

func (s *Server) handleUpdatePokemon(ctx context.Context, req *sdk.CallToolRequest, input UpdatePokemonInput) (*sdk.CallToolResult, UpdatePokemonOutput, error) {
	if input.ID <= 0 {
		return nil, UpdatePokemonOutput{}, fmt.Errorf("id is required")
	}
	err := s.cat.Update(ctx, input.ID, catalog.Patch{
		Name:      input.Name,
		Types:     input.Types,
		Sprite:    input.Sprite,
		Height:    input.Height,
		Weight:    input.Weight,
		Abilities: input.Abilities,
	})
	if err != nil {
		return nil, UpdatePokemonOutput{}, err
	}
	return nil, UpdatePokemonOutput{ID: input.ID}, nil
}

func (s *Server) handleDeletePokemon(ctx context.Context, req *sdk.CallToolRequest, input DeletePokemonInput) (*sdk.CallToolResult, DeletePokemonOutput, error) {
	if input.ID <= 0 {
		return nil, DeletePokemonOutput{}, fmt.Errorf("id is required")
	}
	if !input.Confirm {
		return nil, DeletePokemonOutput{}, fmt.Errorf("confirm must be true to delete")
	}
	if err := s.cat.Delete(ctx, input.ID, true); err != nil {
		return nil, DeletePokemonOutput{}, err
	}
	return nil, DeletePokemonOutput{ID: input.ID}, nil
}

func (s *Server) handleListTypes(ctx context.Context, req *sdk.CallToolRequest, input ListTypesInput) (*sdk.CallToolResult, ListTypesOutput, error) {
	records, err := s.cat.Load(ctx)
	if err != nil {
		return nil, ListTypesOutput{}, err
	}
	return nil, ListTypesOutput{Types: catalog.TypeVocabulary(records)}, nil
}

func (s *Server) handleResyncPokedex(ctx context.Context, req *sdk.CallToolRequest, input ResyncPokedexInput) (*sdk.CallToolResult, ResyncPokedexOutput, error) {
	if !input.Confirm {
		return nil, ResyncPokedexOutput{}, fmt.Errorf("confirm must be true to resync")
	}
	if err := s.cat.Reset(ctx); err != nil {
		return nil, ResyncPokedexOutput{}, err
	}
	records, err := s.cat.Load(ctx)
	if err != nil {
		return nil, ResyncPokedexOutput{}, err
	}
	return nil, ResyncPokedexOutput{Count: len(records)}, nil
}

func recordOutput(r catalog.Record) RecordOutput {
	return RecordOutput{
		ID:        r.ID,
		Name:      r.Name,
		Types:     r.Types,
		Sprite:    r.Sprite,
		Height:    r.Height,
		Weight:    r.Weight,
		Abilities: r.Abilities,
	}
}
