package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job and dashboard routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
	Dashboard(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	SubmitApplication(c *gin.Context)
	ListApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
}

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	GetMe(c *gin.Context)
	UpdateMe(c *gin.Context)
	ListSavedJobs(c *gin.Context)
	SaveJob(c *gin.Context)
	UnsaveJob(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ UserHandlerInterface = (*UserHandler)(nil)
