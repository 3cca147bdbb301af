package commentValidator

import (
	commentController "learnhub/controllers/comment"
	"learnhub/middleware"
	"learnhub/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateComment validator middleware. Content is sanitized before the
// length check so a comment that is pure markup is rejected as empty.
func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(commentController.CreateCommentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ModuleID) == "" {
			errors["moduleId"] = "Module id is required!"
		}

		reqData.Content = utils.SanitizeCommentContent(reqData.Content)
		if reqData.Content == "" {
			errors["content"] = "Comment content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}

// UpdateComment validator middleware
func UpdateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		commentID, err := strconv.Atoi(c.Params("id"))
		if err != nil || commentID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
		}

		reqData := new(struct {
			Content string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		content := utils.SanitizeCommentContent(reqData.Content)
		if content == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Comment content is required!",
			})
		}

		c.Locals("commentID", commentID)
		c.Locals("validatedContent", content)
		return c.Next()
	}
}

// CommentID validator middleware for routes that only take the id param.
func CommentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		commentID, err := strconv.Atoi(c.Params("id"))
		if err != nil || commentID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
		}

		c.Locals("commentID", commentID)
		return c.Next()
	}
}
