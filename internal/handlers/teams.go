package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/types"
)

// TeamRequest is the body of POST /teams. Members may be a list of user ids or a single id.
type TeamRequest struct {
	Name    string                            `json:"name" validate:"required,notblank,max=100"`
	Members *types.FlexList[types.FlexUint64] `json:"members"`
}

// TeamResponse is the wire form of a team
type TeamResponse struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Members []uint64 `json:"members"`
}

func toTeamResponse(t models.Team) TeamResponse {
	return TeamResponse{ID: t.ID, Name: t.Name, Members: t.MemberIDs()}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Tags Teams
// @Produce json
// @Success 200 {array} TeamResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /teams/ [get]
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := services.ListTeams(h.DB)
	if err != nil {
		return fail(c, "listTeams", err)
	}
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamResponse(t))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetTeam handles GET /teams/:id
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} TeamResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /teams/{id}/ [get]
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "getTeam", err)
	}
	team, err := services.GetTeam(h.DB, id)
	if err != nil {
		return fail(c, "getTeam", err)
	}
	return c.Status(fiber.StatusOK).JSON(toTeamResponse(*team))
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Every member id must name an existing user
// @Tags Teams
// @Accept json
// @Produce json
// @Param body body TeamRequest true "Team"
// @Success 201 {object} TeamResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /teams/ [post]
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var req TeamRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, "createTeam", err)
	}

	var memberIDs []uint64
	if req.Members != nil {
		memberIDs = types.IDs(*req.Members)
	}

	team := models.Team{Name: req.Name}
	if err := services.CreateTeam(h.DB, &team, memberIDs); err != nil {
		return fail(c, "createTeam", err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTeamResponse(team))
}
