package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth and user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	VerifyAccount(c *gin.Context)
	ResendCode(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
	ListUsers(c *gin.Context)
	SetUserStatus(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	ListJobs(c *gin.Context)
	ListMyJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	UpdateJobStatus(c *gin.Context)
	ApplyToJob(c *gin.Context)
	SelectApplicant(c *gin.Context)
}

// JobApplicationHandlerInterface defines the methods needed by the application routes.
type JobApplicationHandlerInterface interface {
	ListMyApplications(c *gin.Context)
	ListEmployerApplications(c *gin.Context)
	ListApplicationsForJob(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
	WithdrawApplication(c *gin.Context)
}

type CategoryHandlerInterface interface {
	ListCategories(c *gin.Context)
	CreateCategory(c *gin.Context)
	UpdateCategory(c *gin.Context)
	DeleteCategory(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ JobApplicationHandlerInterface = (*JobApplicationHandler)(nil)
var _ CategoryHandlerInterface = (*CategoryHandler)(nil)
