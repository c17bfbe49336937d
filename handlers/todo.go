package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"todovoice/models"
)

type CreateTodoRequest struct {
	Title string `json:"title" form:"title"`
}

// @Summary Get all to-do items.
// @Description fetch every to-do item in storage order.
// @Tags todos
// @Produce json
// @Success 200 {object} []models.Todo
// @Router /todos [get]
func HandleAllTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		todos, err := h.Todos.All(c.Context())
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to list todos", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "todos", todos)
	}
}

// @Summary Create a to-do item.
// @Description create a single to-do item with completed=false. Empty titles are accepted.
// @Tags todos
// @Accept json
// @Param todo body CreateTodoRequest true "Todo to create"
// @Produce json
// @Success 200 {object} models.Todo
// @Router /todos [post]
func HandleCreateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		req := new(CreateTodoRequest)
		if err := c.BodyParser(req); err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "request body malformed", err.Error())
		}

		todo := &models.Todo{Title: req.Title, Completed: false}
		id, err := h.Todos.Insert(c.Context(), todo)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", "failed to create todo", err.Error())
		}
		todo.ID = id
		return FiberJsonResponse(c, fiber.StatusOK, "success", "new todo created", todo)
	}
}

// @Summary Toggle a to-do item's completion flag.
// @Description flip the completed flag of the item with the given id.
// @Tags todos
// @Param id path string true "Todo ID"
// @Produce json
// @Success 200 {object} models.Todo
// @Router /todos/:id/complete [put]
func HandleToggleTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid todo id", err.Error())
		}

		todo, err := h.Todos.ToggleComplete(c.Context(), id)
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "todo not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "todo updated", todo)
	}
}

// @Summary Delete a to-do item.
// @Description remove the item with the given id.
// @Tags todos
// @Param id path string true "Todo ID"
// @Produce json
// @Success 200 "OK"
// @Router /todos/:id [delete]
func HandleDeleteTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", "invalid todo id", err.Error())
		}

		if err = h.Todos.Delete(c.Context(), id); err != nil {
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", "todo not found", err.Error())
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "todo deleted", nil)
	}
}
