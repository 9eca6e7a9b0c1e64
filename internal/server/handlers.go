package server

import (
	"encoding/json"
	"net/http"

	"github.com/intelligrit/geodis/internal/engine"
	"github.com/intelligrit/geodis/internal/model"
)

// disambiguateRequest is the wire shape of a POST /api/disambiguate body.
// Tokens are supplied pre-tokenized by the caller — tokenization and NER
// are out of scope for this engine (spec §1 Non-goals).
type disambiguateRequest struct {
	Tokens           []string        `json:"tokens"`
	Candidates       []candidateWire `json:"candidates"`
	CoordinateGroups [][]string      `json:"coordinateGroups"`
	AmbiguityGroups  [][]string      `json:"ambiguityGroups"`
}

type candidateWire struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// locationWire is the response shape for one selected location — a flat
// projection of model.ExtendedLocation's exported fields relevant to a
// consumer, omitting engine-internal bookkeeping (Boost, Parents).
type locationWire struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	Score               float64  `json:"score"`
	Confidence          float64  `json:"confidence"`
	ScoreDeviation      float64  `json:"scoreDeviation"`
	ConfidenceDeviation float64  `json:"confidenceDeviation"`
	CountryStrength     float64  `json:"countryStrength"`
	Entities            []string `json:"entities"`
}

type distributionWire struct {
	Avg        float64 `json:"avg"`
	Variance   float64 `json:"variance"`
	StdDev     float64 `json:"stdDev"`
	StdDevPerc float64 `json:"stdDevPerc"`
}

type disambiguateResponse struct {
	Results []locationWire `json:"results"`
	Stats   *struct {
		Score      distributionWire `json:"score"`
		Confidence distributionWire `json:"confidence"`
	} `json:"stats,omitempty"`
}

func (s *Server) handleDisambiguate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req disambiguateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	candidates := make([]model.CandidateEntity, len(req.Candidates))
	for i, c := range req.Candidates {
		candidates[i] = model.CandidateEntity{Name: c.Name, Score: c.Score}
	}
	coordGroups := make([]model.CoordinateGroup, len(req.CoordinateGroups))
	for i, g := range req.CoordinateGroups {
		coordGroups[i] = model.CoordinateGroup(g)
	}
	ambGroups := make([]model.AmbiguityGroup, len(req.AmbiguityGroups))
	for i, g := range req.AmbiguityGroups {
		ambGroups[i] = model.AmbiguityGroup(g)
	}

	results, stats, err := engine.FindLocations(s.Dict, req.Tokens, candidates, coordGroups, ambGroups)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := disambiguateResponse{Results: make([]locationWire, len(results))}
	for i, l := range results {
		resp.Results[i] = locationWire{
			ID:                  l.Location.ID,
			Name:                l.Location.Name,
			Type:                l.Location.Type.String(),
			Score:               l.Score,
			Confidence:          l.Confidence,
			ScoreDeviation:      l.ScoreDeviation,
			ConfidenceDeviation: l.ConfidenceDeviation,
			CountryStrength:     l.CountryStrength,
			Entities:            l.Entities,
		}
	}
	if stats != nil {
		resp.Stats = &struct {
			Score      distributionWire `json:"score"`
			Confidence distributionWire `json:"confidence"`
		}{
			Score:      distributionWire(stats.Score),
			Confidence: distributionWire(stats.Confidence),
		}
	}

	writeJSON(w, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"locations": s.Dict.Len(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("null"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
