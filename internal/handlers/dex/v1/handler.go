package v1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/detail"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/listing"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/typechart"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
	"github.com/KirkDiggler/dex-api/internal/services/session"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Sessions  session.Service
	TypeChart typechart.Service
	Catalog   catalog.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.TypeChart == nil {
		vb.RequiredField("TypeChart")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Handler implements dex.v1.DexService
type Handler struct {
	sessions  session.Service
	typeChart typechart.Service
	catalog   catalog.Service
}

var _ DexServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sessions:  cfg.Sessions,
		typeChart: cfg.TypeChart,
		catalog:   cfg.Catalog,
	}, nil
}

// serve decodes the request, runs fn and encodes its response, converting
// every error for the wire
func serve[Req, Resp any](ctx context.Context, in *structpb.Struct, fn func(context.Context, *Req) (*Resp, error)) (*structpb.Struct, error) {
	req := new(Req)
	if err := Decode(in, req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := fn(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := Encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func (h *Handler) session(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}
	out, err := h.sessions.Get(ctx, &session.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Session, nil
}

// CreateSession starts a session
func (h *Handler) CreateSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error) {
		out, err := h.sessions.Create(ctx, &session.CreateInput{PageSize: req.PageSize})
		if err != nil {
			return nil, err
		}
		return &CreateSessionResponse{SessionID: out.Session.ID}, nil
	})
}

// EndSession ends a session and drops its cache
func (h *Handler) EndSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *EndSessionRequest) (*EndSessionResponse, error) {
		if req.SessionID == "" {
			return nil, errors.InvalidArgument("session_id is required")
		}
		out, err := h.sessions.End(ctx, &session.EndInput{ID: req.SessionID})
		if err != nil {
			return nil, err
		}
		return &EndSessionResponse{CachedEntries: out.CachedEntries}, nil
	})
}

// UpdateListing applies filter changes and waits for the list to settle
func (h *Handler) UpdateListing(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *UpdateListingRequest) (*ListingResponse, error) {
		sess, err := h.session(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}

		var events []listing.Event
		if req.Region != nil {
			events = append(events, listing.RegionChanged(*req.Region))
		}
		if req.Generation != nil {
			events = append(events, listing.GenerationChanged(*req.Generation))
		}
		if req.Types != nil {
			events = append(events, listing.TypesChanged(*req.Types...))
		}
		if req.Search != nil {
			events = append(events, listing.SearchChanged(*req.Search))
		}
		if req.PageIndex != nil || req.PageSize != nil {
			var index, size int
			if req.PageIndex != nil {
				index = *req.PageIndex
			} else {
				index = sess.Listing.View().PageIndex
			}
			if req.PageSize != nil {
				size = *req.PageSize
			}
			events = append(events, listing.PageChanged(index, size))
		}

		view, err := sess.Listing.Apply(ctx, events...)
		if err != nil {
			return nil, err
		}
		return &ListingResponse{View: view}, nil
	})
}

// GetListing returns the current list snapshot without waiting
func (h *Handler) GetListing(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *GetListingRequest) (*ListingResponse, error) {
		sess, err := h.session(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		return &ListingResponse{View: sess.Listing.View()}, nil
	})
}

// ShowPokemon resets the detail view to a pokemon
func (h *Handler) ShowPokemon(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *ShowPokemonRequest) (*DetailResponse, error) {
		sess, err := h.session(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		if req.ID == "" {
			return nil, errors.InvalidArgument("id is required")
		}
		view, err := sess.Detail.Show(ctx, &detail.ShowInput{ID: req.ID})
		if err != nil {
			return nil, err
		}
		return &DetailResponse{View: view}, nil
	})
}

// NavigatePokemon moves the detail view to another pokemon
func (h *Handler) NavigatePokemon(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *NavigatePokemonRequest) (*DetailResponse, error) {
		sess, err := h.session(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		view, err := sess.Detail.Navigate(ctx, &detail.NavigateInput{ID: req.ID})
		if err != nil {
			return nil, err
		}
		return &DetailResponse{View: view}, nil
	})
}

// ListMoves derives the shown pokemon's moves
func (h *Handler) ListMoves(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *ListMovesRequest) (*ListMovesResponse, error) {
		sess, err := h.session(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		out, err := sess.Detail.Moves(ctx, &detail.MovesInput{
			Method:     req.Method,
			SortKey:    detail.SortKey(req.Sort),
			Descending: req.Descending,
		})
		if err != nil {
			return nil, err
		}
		return &ListMovesResponse{Moves: out.Moves, AvailableLearnMethods: out.AvailableLearnMethods}, nil
	})
}

// GetMove opens the move modal
func (h *Handler) GetMove(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *GetMoveRequest) (*GetMoveResponse, error) {
		sess, err := h.session(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		mv, err := sess.Detail.ViewMove(ctx, &detail.ViewMoveInput{Move: req.Move})
		if err != nil {
			return nil, err
		}
		return &GetMoveResponse{Move: mv}, nil
	})
}

// CloseMove empties the move modal
func (h *Handler) CloseMove(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *CloseMoveRequest) (*CloseMoveResponse, error) {
		sess, err := h.session(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		sess.Detail.CloseMove()
		return &CloseMoveResponse{}, nil
	})
}

// Effectiveness answers type matchup questions from the shared chart
func (h *Handler) Effectiveness(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *EffectivenessRequest) (*EffectivenessResponse, error) {
		if req.Attacking == "" && len(req.Defending) == 0 {
			return nil, errors.InvalidArgument("attacking or defending is required")
		}

		resp := &EffectivenessResponse{}
		if req.Attacking != "" && len(req.Defending) > 0 {
			out, err := h.typeChart.Effectiveness(ctx, &typechart.EffectivenessInput{
				Attacking: req.Attacking,
				Defending: req.Defending,
			})
			if err != nil {
				return nil, err
			}
			resp.Multiplier = &out.Multiplier
			resp.Message = out.Message
			resp.DefendingSummary = out.DefendingSummary
		}
		if req.Attacking != "" {
			out, err := h.typeChart.Coverage(ctx, &typechart.CoverageInput{Attacking: req.Attacking})
			if err != nil {
				return nil, err
			}
			resp.Coverage = out.Entries
		}
		if len(req.Defending) > 0 {
			out, err := h.typeChart.Profile(ctx, &typechart.ProfileInput{Defending: req.Defending})
			if err != nil {
				return nil, err
			}
			resp.Profile = out.Entries
		}
		return resp, nil
	})
}

// Suggest answers autocomplete queries from the shared catalog
func (h *Handler) Suggest(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *SuggestRequest) (*SuggestResponse, error) {
		out, err := h.catalog.Suggest(ctx, &catalog.SuggestInput{Query: req.Query, Limit: req.Limit})
		if err != nil {
			return nil, err
		}
		return &SuggestResponse{Suggestions: out.Suggestions}, nil
	})
}
