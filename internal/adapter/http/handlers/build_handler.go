package handlers

import (
	"net/http"

	request "pcbuild_configurator/internal/adapter/http/dto/request"
	response "pcbuild_configurator/internal/adapter/http/dto/response"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildHandler serves the build session workflow and component selection.
type BuildHandler struct {
	workflow usecase.IWorkflowController
	store    usecase.IConfigurationStore
	gate     usecase.ReviewGate
	logger   *zap.Logger
}

func NewBuildHandler(workflow usecase.IWorkflowController, store usecase.IConfigurationStore, gate usecase.ReviewGate, logger *zap.Logger) *BuildHandler {
	if gate == "" {
		gate = usecase.ReviewGateStrict
	}
	return &BuildHandler{
		workflow: workflow,
		store:    store,
		gate:     gate,
		logger:   observability.OrNop(logger),
	}
}

// CreateSession godoc
// @Summary      Start a build session
// @Tags         builds
// @Produce      json
// @Success      201  {object}  response.BuildSessionResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /builds [post]
func (h *BuildHandler) CreateSession(c *gin.Context) {
	s, err := h.workflow.Start(c.Request.Context())
	if err != nil {
		h.fail(c, "start", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBuildSession(s, h.gate))
}

// GetSession godoc
// @Summary      Get a build session
// @Tags         builds
// @Produce      json
// @Param        session_id  path  string  true  "Build session ID"
// @Success      200  {object}  response.BuildSessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /builds/{session_id} [get]
func (h *BuildHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	s, err := h.workflow.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "get", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildSession(s, h.gate))
}

// SelectPlatform godoc
// @Summary      Choose the platform and create the configuration
// @Tags         builds
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Build session ID"
// @Param        payload     body  request.PlatformRequest  true  "Platform choice"
// @Success      200  {object}  response.BuildSessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /builds/{session_id}/platform [post]
func (h *BuildHandler) SelectPlatform(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.PlatformRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.workflow.SelectPlatform(c.Request.Context(), sessionID, payload.ToCommand())
	if err != nil {
		h.fail(c, "select-platform", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildSession(s, h.gate))
}

// AddComponent godoc
// @Summary      Select a component
// @Description  Singular categories are replaced, storage entries are appended.
// @Tags         builds
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                    true  "Build session ID"
// @Param        payload     body  request.ComponentRequest  true  "Component selection"
// @Success      200  {object}  response.BuildSessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /builds/{session_id}/components [put]
func (h *BuildHandler) AddComponent(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.ComponentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.store.AddComponent(c.Request.Context(), sessionID, payload.ComponentType, payload.ProductID, payload.Quantity)
	if err != nil {
		h.fail(c, "add-component", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildSession(s, h.gate))
}

// RemoveComponent godoc
// @Summary      Remove a component
// @Tags         builds
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                          true  "Build session ID"
// @Param        payload     body  request.RemoveComponentRequest  true  "Category and optional storage index"
// @Success      200  {object}  response.BuildSessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /builds/{session_id}/components [delete]
func (h *BuildHandler) RemoveComponent(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.RemoveComponentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.store.RemoveComponent(c.Request.Context(), sessionID, payload.ComponentType, payload.StorageIndex)
	if err != nil {
		h.fail(c, "remove-component", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildSession(s, h.gate))
}

// ChangeStep godoc
// @Summary      Move to another workflow step
// @Tags         builds
// @Accept       json
// @Produce      json
// @Param        session_id  path  string               true  "Build session ID"
// @Param        payload     body  request.StepRequest  true  "Target step"
// @Success      200  {object}  response.BuildSessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /builds/{session_id}/step [post]
func (h *BuildHandler) ChangeStep(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.StepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.workflow.Advance(c.Request.Context(), sessionID, payload.Step)
	if err != nil {
		h.fail(c, "change-step", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildSession(s, h.gate))
}

// Abandon godoc
// @Summary      Abandon a build session
// @Tags         builds
// @Produce      json
// @Param        session_id  path  string  true  "Build session ID"
// @Success      200  {object}  response.BuildSessionResponse
// @Failure      410  {object}  pkg.HTTPError
// @Router       /builds/{session_id}/abandon [post]
func (h *BuildHandler) Abandon(c *gin.Context) {
	sessionID := c.Param("session_id")
	s, err := h.workflow.Abandon(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "abandon", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildSession(s, h.gate))
}

func (h *BuildHandler) fail(c *gin.Context, op, sessionID string, err error) {
	appErr := mapBuildError(err)
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("session_id", sessionID),
		zap.String("code", appErr.Code),
		zap.Error(err),
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("build request failed", fields...)
	} else {
		h.logger.Info("build request rejected", fields...)
	}
	writeError(c, appErr)
}
