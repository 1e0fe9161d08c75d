package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/securedocs/docvault/internal/core/ports"
)

// GroupHandler handles group CRUD and membership growth.
type GroupHandler struct {
	groupService ports.GroupService
}

func NewGroupHandler(groupService ports.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// List returns all groups without relations.
//
// @Summary      List groups
// @Tags         groups
// @Produce      json
// @Success      200  {array}  groupResponse
// @Router       /groups [get]
func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.groupService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGroupResponses(groups))
}

// FindWithUsers returns one group with its users populated.
//
// @Summary      Get a group with its users
// @Tags         groups
// @Produce      json
// @Param        id  path  int  true  "Group id"
// @Success      200  {object}  groupWithUsersResponse
// @Failure      404  {object}  map[string]string
// @Router       /groups/users/{id} [get]
func (h *GroupHandler) FindWithUsers(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	group, err := h.groupService.FindOneWithUsers(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGroupWithUsersResponse(group))
}

// FindWithDocuments returns one group with its documents populated.
//
// @Summary      Get a group with its documents
// @Tags         groups
// @Produce      json
// @Param        id  path  int  true  "Group id"
// @Success      200  {object}  groupWithDocumentsResponse
// @Failure      404  {object}  map[string]string
// @Router       /groups/documents/{id} [get]
func (h *GroupHandler) FindWithDocuments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	group, err := h.groupService.FindOneWithDocuments(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGroupWithDocumentsResponse(group))
}

// Create creates a group whose users set equals the given ids.
//
// @Summary      Create a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        body  body      createGroupRequest  true  "Group details"
// @Success      201   {object}  groupFullResponse
// @Failure      404   {object}  map[string]string
// @Router       /groups [post]
func (h *GroupHandler) Create(c echo.Context) error {
	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.groupService.Create(c.Request().Context(), ports.CreateGroupInput{
		Name:    req.Name,
		UserIDs: req.UserIDs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toGroupFullResponse(group))
}

// AddUsers appends users to a group's membership.
//
// @Summary      Add users to a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Group id"
// @Param        body  body      addUsersRequest  true  "User ids"
// @Success      200   {object}  groupFullResponse
// @Failure      404   {object}  map[string]string
// @Router       /groups/users/{id} [put]
func (h *GroupHandler) AddUsers(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req addUsersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.groupService.AddUsers(c.Request().Context(), id, req.UserIDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGroupFullResponse(group))
}

// AddDocuments appends documents to a group's membership.
//
// @Summary      Add documents to a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Group id"
// @Param        body  body      addDocumentsRequest  true  "Document ids"
// @Success      200   {object}  groupFullResponse
// @Failure      404   {object}  map[string]string
// @Router       /groups/documents/{id} [put]
func (h *GroupHandler) AddDocuments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req addDocumentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.groupService.AddDocuments(c.Request().Context(), id, req.DocumentIDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGroupFullResponse(group))
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid group id")
	}
	return id, nil
}
