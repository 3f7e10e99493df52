package routes

import (
	"urb_denuncias/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathComplaints = "/complaints"
	PathUsers      = "/users"
	PathLogin      = "/login"
	PathOptions    = "/options"
)

func addComplaintRoutes(rg *gin.RouterGroup, complaintHandler *handlers.ComplaintHandler) {
	rg.GET(PathOptions, complaintHandler.ListOptions)

	complaints := rg.Group(PathComplaints)
	{
		complaints.POST("", complaintHandler.CreateComplaint)
		complaints.GET("", complaintHandler.ListComplaints)
		complaints.GET("/:id", complaintHandler.GetComplaint)
		complaints.PUT("/:id", complaintHandler.UpdateComplaint)
		complaints.DELETE("/:id", complaintHandler.DeleteComplaint)
		complaints.PATCH("/:id/status", complaintHandler.ChangeStatus)
		complaints.POST("/:id/reincidences", complaintHandler.AddReincidence)
		complaints.POST("/:id/photos", complaintHandler.UploadPhoto)
	}
}

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	rg.POST(PathUsers, userHandler.CreateUser)
	rg.POST(PathLogin, userHandler.Login)
}
