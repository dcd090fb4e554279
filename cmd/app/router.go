package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodPost, "/user/signup", app.signupUserHandler)
	router.HandlerFunc(http.MethodPost, "/user/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodGet, "/user/list", app.requireAuthUser(app.listUserBlogsHandler))
	router.HandlerFunc(http.MethodPost, "/user/new-blog", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodPatch, "/user/:bid", app.requireAuthUser(app.updateBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/user/:bid", app.requireAuthUser(app.deleteBlogHandler))

	router.HandlerFunc(http.MethodGet, "/blogs/all", app.getAllBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/blogs/blog/:bid", app.getBlogHandler)
	router.HandlerFunc(http.MethodPost, "/blogs/comment/:bid", app.requireAuthUser(app.createCommentHandler))
	router.HandlerFunc(http.MethodPatch, "/blogs/comment/:cid", app.requireAuthUser(app.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/blogs/comment/:cid", app.requireAuthUser(app.deleteCommentHandler))

	return app.recoverPanic(app.rateLimit(app.logRequest(app.authenticate(router))))
}
