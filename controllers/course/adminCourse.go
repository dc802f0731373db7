package controllers

import (
	"log"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/policy"
	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new course with the actor as instructor. Admin only.
func CreateCourse(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if d := policy.CanCreateCourse(actor); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only admins can create courses!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title" validate:"required,min=5"`
		Description string `json:"description" validate:"required,min=10"`
		Image       string `json:"image"`
		Price       string `json:"price"`
		CategoryID  *uint  `json:"category_id"`
		Content     string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	price := reqData.Price
	if price == "" {
		price = "0"
	}

	if reqData.CategoryID != nil {
		category, err := services.Entities().GetCategory(*reqData.CategoryID)
		if err != nil {
			return middleware.ServiceErrorResponse(c, err)
		}
		if category == nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Image:        reqData.Image,
		Price:        price,
		InstructorID: actor.ID,
		CategoryID:   reqData.CategoryID,
		Status:       models.CourseDraft,
		Content:      reqData.Content,
	}

	if err := services.Entities().InsertCourse(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates an existing course. Instructor-or-admin.
func UpdateCourse(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := services.Entities().GetCourse(uint(courseID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if d := policy.CanModifyCourse(actor, course); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Image       string `json:"image"`
		Price       string `json:"price"`
		CategoryID  *uint  `json:"category_id"`
		Status      string `json:"status" validate:"omitempty,oneof=draft published"`
		Content     string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Image != "" {
		course.Image = reqData.Image
	}
	if reqData.Price != "" {
		course.Price = reqData.Price
	}
	if reqData.CategoryID != nil {
		category, err := services.Entities().GetCategory(*reqData.CategoryID)
		if err != nil {
			return middleware.ServiceErrorResponse(c, err)
		}
		if category == nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		course.CategoryID = reqData.CategoryID
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.Content != "" {
		course.Content = reqData.Content
	}

	if err := services.Entities().UpdateCourse(course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course. Admin only.
func DeleteCourse(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if d := policy.CanDeleteCourse(actor); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only admins can delete courses!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := services.Entities().GetCourse(uint(courseID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := services.Entities().DeleteCourse(course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists every course the actor may see, drafts included.
// Backs the admin and instructor dashboards.
func AdminGetAllCourses(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := services.Catalog().VisibleCourses(actor)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	total := len(courses)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses[offset:end],
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UploadCourseImage stores a course thumbnail under the upload directory.
// Instructor-or-admin.
func UploadCourseImage(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := services.Entities().GetCourse(uint(courseID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if d := policy.CanModifyCourse(actor, course); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own courses!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
	}

	course.Image = utils.GetFileURL(path)
	if err := services.Entities().UpdateCourse(course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded successfully!", fiber.Map{
		"image": course.Image,
	})
}
