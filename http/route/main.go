package routes

import (
	"github.com/contractify/contractify-backend/http/controller"
	middlewares "github.com/contractify/contractify-backend/http/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		// Public surface: guest signing and document verification need no
		// account, the token or hash is the credential.
		publicRoutes := apiRoutes.Group("")
		{
			publicRoutes.Use(middles.OptionalAuthMiddleware)

			publicRoutes.GET("/contracts/:contractId/public", ctrl.GetPublicContract)
			publicRoutes.GET("/signatures/tokens/validate", ctrl.ValidateSignatureToken)
			publicRoutes.POST("/signatures/sign-guest", ctrl.SignGuest)
			publicRoutes.POST("/signatures/certificates/verify", ctrl.VerifyCertificate)
			publicRoutes.POST("/documents/verify", ctrl.VerifyDocument)
		}

		authRoutes := apiRoutes.Group("")
		{
			authRoutes.Use(middles.AuthMiddleware)

			contractRoutes := authRoutes.Group("/contracts")
			{
				contractRoutes.GET("/templates", ctrl.ListTemplates)
				contractRoutes.GET("/templates/:templateId", ctrl.GetTemplate)
				contractRoutes.GET("/types", ctrl.ListContractTypes)
				contractRoutes.GET("/types/:type/schema", ctrl.GetContractTypeSchema)

				contractRoutes.GET("", ctrl.ListContracts)
				contractRoutes.POST("", ctrl.CreateContract)
				contractRoutes.GET("/stats", ctrl.GetContractStats)
				contractRoutes.GET("/recent", ctrl.GetRecentContracts)
				contractRoutes.GET("/pending", ctrl.GetPendingContracts)

				contractRoutes.GET("/:contractId", ctrl.GetContract)
				contractRoutes.PATCH("/:contractId", ctrl.UpdateContract)
				contractRoutes.DELETE("/:contractId", ctrl.DeleteContract)
				contractRoutes.POST("/:contractId/duplicate", ctrl.DuplicateContract)
				contractRoutes.PUT("/:contractId/content", ctrl.UpdateContractContent)
				contractRoutes.GET("/:contractId/versions", ctrl.GetContractVersions)
				contractRoutes.PUT("/:contractId/status", ctrl.UpdateContractStatus)
				contractRoutes.GET("/:contractId/transitions", ctrl.GetContractTransitions)
				contractRoutes.GET("/:contractId/history", ctrl.GetContractHistory)
				contractRoutes.GET("/:contractId/parties", ctrl.GetContractParties)
				contractRoutes.POST("/:contractId/parties", ctrl.AddContractParty)
				contractRoutes.DELETE("/:contractId/parties/:partyId", ctrl.RemoveContractParty)
				contractRoutes.GET("/:contractId/signatures", ctrl.GetContractSignatures)
				contractRoutes.GET("/:contractId/certificate", ctrl.GetSignatureCertificate)
			}

			aiRoutes := authRoutes.Group("/ai")
			{
				aiRoutes.POST("/validate-input", ctrl.ValidateAIInput)
				aiRoutes.POST("/generate", ctrl.GenerateContent)
				aiRoutes.POST("/generate-async", ctrl.GenerateContentAsync)
				aiRoutes.POST("/regenerate", ctrl.RegenerateContent)
				aiRoutes.GET("/jobs/:jobId", ctrl.GetAIJob)
			}

			documentRoutes := authRoutes.Group("/documents")
			{
				documentRoutes.POST("/generate-pdf", ctrl.GeneratePDF)
				documentRoutes.GET("/jobs/:jobId", ctrl.GetDocumentJob)
				documentRoutes.GET("/:documentId/download", ctrl.DownloadDocument)
			}

			signatureRoutes := authRoutes.Group("/signatures")
			{
				signatureRoutes.POST("/tokens", ctrl.CreateSignatureToken)
				signatureRoutes.POST("/sign", ctrl.Sign)
				signatureRoutes.PUT("/:signatureId/evidence", ctrl.UpdateSignatureEvidence)
			}

			notificationRoutes := authRoutes.Group("/notifications")
			{
				notificationRoutes.POST("/invitations", ctrl.SendInvitation)
				notificationRoutes.DELETE("/invitations/:invitationId", ctrl.CancelInvitation)
				notificationRoutes.POST("/invitations/:invitationId/resend", ctrl.ResendInvitation)
				notificationRoutes.POST("/reminders", ctrl.ScheduleReminder)
			}

			auditRoutes := authRoutes.Group("/audit")
			{
				auditRoutes.GET("/contracts/:contractId", ctrl.GetAuditTrail)
				auditRoutes.GET("/contracts/:contractId/export", ctrl.ExportAuditTrail)
			}

			userRoutes := authRoutes.Group("/users")
			{
				userRoutes.GET("/me", ctrl.GetMe)
				userRoutes.PATCH("/me", ctrl.UpdateProfile)
				userRoutes.GET("/me/preferences", ctrl.GetPreferences)
				userRoutes.PUT("/me/preferences", ctrl.UpdatePreferences)
				userRoutes.GET("/me/sessions", ctrl.GetSessions)
				userRoutes.DELETE("/me/sessions/:sessionId", ctrl.DeleteSession)
			}
		}
	}
	return r
}
