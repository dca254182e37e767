package handlers

import (
	"github.com/gin-gonic/gin"

	"liaison-portal/internal/middleware"
)

// Handlers bundles the HTTP handlers served by the portal.
type Handlers struct {
	Groups     *GroupHandler
	Feed       *FeedHandler
	Delegation *DelegationHandler
	Meetings   *MeetingHandler
	Minutes    *MinutesHandler
	Catalog    *CatalogHandler
}

// RegisterRoutes wires every portal endpoint onto router.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	router.GET("/groups", h.Groups.ListGroups)
	router.POST("/groups", h.Groups.CreateGroup)
	router.DELETE("/groups", h.Groups.ClearGroups)
	router.POST("/groups/:group_id/select", h.Groups.SelectGroup)
	router.DELETE("/groups/:group_id", h.Groups.DeleteGroup)
	router.POST("/groups/:group_id/members", h.Groups.AddMember)
	router.DELETE("/groups/:group_id/members/:member_id", h.Groups.RemoveMember)
	router.GET("/groups/:group_id/messages", h.Groups.GetGroupMessages)
	router.POST("/groups/:group_id/messages", h.Groups.PostGroupMessage)
	router.GET("/groups/:group_id/export", h.Groups.ExportGroup)

	router.GET("/feed", h.Feed.ListFeed)
	router.DELETE("/feed", h.Feed.ClearLocalData)
	router.POST("/feed/posts", h.Feed.SubmitPost)
	router.POST("/feed/:id/like", h.Feed.ToggleLike)
	router.POST("/feed/:id/bookmark", h.Feed.ToggleBookmark)

	router.GET("/delegation/schools", h.Delegation.ListSchools)
	router.GET("/delegation/groups", h.Delegation.ListGroups)
	router.GET("/delegation/volunteers", h.Delegation.ListVolunteers)
	router.GET("/delegation/people", h.Delegation.ListPeople)
	router.POST("/delegation/people/:id/check-in", h.Delegation.CheckIn)
	router.GET("/delegation/export/:list", h.Delegation.Export)

	router.POST("/meetings/unlock", h.Meetings.Unlock)
	gated := router.Group("/meetings", middleware.MeetingGate())
	gated.GET("", h.Meetings.ListMeetings)
	gated.POST("", h.Meetings.CreateMeeting)
	gated.DELETE("/:meeting_id", h.Meetings.DeleteMeeting)

	router.GET("/minutes", h.Minutes.ListMinutes)
	router.POST("/minutes/:minute_id/received", h.Minutes.ToggleReceived)

	router.GET("/visitors", h.Catalog.ListVisitors)
	router.GET("/visitors/:visitor_id", h.Catalog.GetVisitor)
	router.GET("/events", h.Catalog.ListEvents)
	router.GET("/correspondence", h.Catalog.ListCorrespondence)
	router.GET("/correspondence/:letter_id", h.Catalog.GetLetter)
	router.GET("/reports", h.Catalog.ListReports)
	router.GET("/photos", h.Catalog.ListPhotos)
	router.GET("/photos/:photo_id", h.Catalog.GetPhoto)
}
