package v1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/detail"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/listing"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/typechart"
	"github.com/KirkDiggler/dex-api/internal/services/catalog"
)

// CreateSessionRequest starts a session
type CreateSessionRequest struct {
	PageSize int `json:"page_size,omitempty"`
}

// CreateSessionResponse carries the new session id
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// EndSessionRequest ends a session
type EndSessionRequest struct {
	SessionID string `json:"session_id"`
}

// EndSessionResponse reports what was dropped with the session
type EndSessionResponse struct {
	CachedEntries int `json:"cached_entries"`
}

// UpdateListingRequest changes the list filter. Only the fields that are
// present become events, applied in field order.
type UpdateListingRequest struct {
	SessionID  string    `json:"session_id"`
	Region     *string   `json:"region,omitempty"`
	Generation *string   `json:"generation,omitempty"`
	Types      *[]string `json:"types,omitempty"`
	Search     *string   `json:"search,omitempty"`
	PageIndex  *int      `json:"page_index,omitempty"`
	PageSize   *int      `json:"page_size,omitempty"`
}

// GetListingRequest reads the list without waiting
type GetListingRequest struct {
	SessionID string `json:"session_id"`
}

// ListingResponse carries a list snapshot
type ListingResponse struct {
	View *listing.View `json:"view"`
}

// ShowPokemonRequest shows a pokemon by id or name
type ShowPokemonRequest struct {
	SessionID string `json:"session_id"`
	ID        string `json:"id"`
}

// NavigatePokemonRequest moves the detail view to another pokemon
type NavigatePokemonRequest struct {
	SessionID string `json:"session_id"`
	ID        string `json:"id"`
}

// DetailResponse carries a detail snapshot
type DetailResponse struct {
	View *detail.View `json:"view"`
}

// ListMovesRequest filters and sorts the shown pokemon's moves
type ListMovesRequest struct {
	SessionID  string `json:"session_id"`
	Method     string `json:"method,omitempty"`
	Sort       string `json:"sort,omitempty"`
	Descending bool   `json:"descending,omitempty"`
}

// ListMovesResponse carries the derived moves
type ListMovesResponse struct {
	Moves                 []detail.MoveEntry `json:"moves"`
	AvailableLearnMethods []string           `json:"available_learn_methods"`
}

// GetMoveRequest opens the move modal
type GetMoveRequest struct {
	SessionID string `json:"session_id"`
	Move      string `json:"move"`
}

// GetMoveResponse carries the move modal content
type GetMoveResponse struct {
	Move *detail.MoveView `json:"move"`
}

// CloseMoveRequest empties the move modal
type CloseMoveRequest struct {
	SessionID string `json:"session_id"`
}

// CloseMoveResponse is empty
type CloseMoveResponse struct{}

// EffectivenessRequest asks about type matchups. With both fields set the
// verdict is computed; Attacking alone adds coverage and Defending alone
// adds the defense profile.
type EffectivenessRequest struct {
	Attacking string   `json:"attacking,omitempty"`
	Defending []string `json:"defending,omitempty"`
}

// EffectivenessResponse carries whichever parts were asked for
type EffectivenessResponse struct {
	Multiplier       *float64          `json:"multiplier,omitempty"`
	Message          string            `json:"message,omitempty"`
	DefendingSummary string            `json:"defending_summary,omitempty"`
	Coverage         []typechart.Entry `json:"coverage,omitempty"`
	Profile          []typechart.Entry `json:"profile,omitempty"`
}

// SuggestRequest asks for autocomplete matches
type SuggestRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SuggestResponse carries autocomplete matches
type SuggestResponse struct {
	Suggestions []catalog.Suggestion `json:"suggestions"`
}

// Decode reads a Struct payload into a message
func Decode(in *structpb.Struct, out any) error {
	raw, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request payload")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request payload")
	}
	return nil
}

// Encode turns a message into a Struct payload
func Encode(msg any) (*structpb.Struct, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode payload")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode payload")
	}
	return out, nil
}
