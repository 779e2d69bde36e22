package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// Client is a typed client for dex.v1.DexService. Errors come back as
// *errors.Error with the server's code and metadata.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[Req, Resp any](ctx context.Context, c *Client, method string, req *Req, opts ...grpc.CallOption) (*Resp, error) {
	in, err := Encode(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	resp := new(Resp)
	if err := Decode(out, resp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "malformed response payload")
	}
	return resp, nil
}

// CreateSession starts a session
func (c *Client) CreateSession(ctx context.Context, req *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error) {
	return invoke[CreateSessionRequest, CreateSessionResponse](ctx, c, MethodCreateSession, req, opts...)
}

// EndSession ends a session
func (c *Client) EndSession(ctx context.Context, req *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error) {
	return invoke[EndSessionRequest, EndSessionResponse](ctx, c, MethodEndSession, req, opts...)
}

// UpdateListing changes the list filter and waits for the result
func (c *Client) UpdateListing(ctx context.Context, req *UpdateListingRequest, opts ...grpc.CallOption) (*ListingResponse, error) {
	return invoke[UpdateListingRequest, ListingResponse](ctx, c, MethodUpdateListing, req, opts...)
}

// GetListing reads the list without waiting
func (c *Client) GetListing(ctx context.Context, req *GetListingRequest, opts ...grpc.CallOption) (*ListingResponse, error) {
	return invoke[GetListingRequest, ListingResponse](ctx, c, MethodGetListing, req, opts...)
}

// ShowPokemon shows a pokemon
func (c *Client) ShowPokemon(ctx context.Context, req *ShowPokemonRequest, opts ...grpc.CallOption) (*DetailResponse, error) {
	return invoke[ShowPokemonRequest, DetailResponse](ctx, c, MethodShowPokemon, req, opts...)
}

// NavigatePokemon moves the detail view
func (c *Client) NavigatePokemon(ctx context.Context, req *NavigatePokemonRequest, opts ...grpc.CallOption) (*DetailResponse, error) {
	return invoke[NavigatePokemonRequest, DetailResponse](ctx, c, MethodNavigatePokemon, req, opts...)
}

// ListMoves lists the shown pokemon's moves
func (c *Client) ListMoves(ctx context.Context, req *ListMovesRequest, opts ...grpc.CallOption) (*ListMovesResponse, error) {
	return invoke[ListMovesRequest, ListMovesResponse](ctx, c, MethodListMoves, req, opts...)
}

// GetMove opens the move modal
func (c *Client) GetMove(ctx context.Context, req *GetMoveRequest, opts ...grpc.CallOption) (*GetMoveResponse, error) {
	return invoke[GetMoveRequest, GetMoveResponse](ctx, c, MethodGetMove, req, opts...)
}

// CloseMove empties the move modal
func (c *Client) CloseMove(ctx context.Context, req *CloseMoveRequest, opts ...grpc.CallOption) (*CloseMoveResponse, error) {
	return invoke[CloseMoveRequest, CloseMoveResponse](ctx, c, MethodCloseMove, req, opts...)
}

// Effectiveness asks about type matchups
func (c *Client) Effectiveness(ctx context.Context, req *EffectivenessRequest, opts ...grpc.CallOption) (*EffectivenessResponse, error) {
	return invoke[EffectivenessRequest, EffectivenessResponse](ctx, c, MethodEffectiveness, req, opts...)
}

// Suggest asks for autocomplete matches
func (c *Client) Suggest(ctx context.Context, req *SuggestRequest, opts ...grpc.CallOption) (*SuggestResponse, error) {
	return invoke[SuggestRequest, SuggestResponse](ctx, c, MethodSuggest, req, opts...)
}
