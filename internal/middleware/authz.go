package middleware

import (
	"context"
	"errors"
	"sort"

	"bizsuite/internal/authz"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/logger"
	"bizsuite/internal/models"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing authorization data
const (
	ActorKey      = "actor"
	BusinessIDKey = "businessID"
	BusinessKey   = "business"
	ResourceKey   = "resource"
	CategoriesKey = "reportCategories"
)

const msgInsufficientPermissions = "insufficient permissions"

// ResourceLoader loads the tenant resource named by a route's :id parameter.
type ResourceLoader func(ctx context.Context, id primitive.ObjectID) (authz.Resource, error)

// CategoryExtractor returns the report category a request targets.
type CategoryExtractor func(c *gin.Context) (string, error)

// BusinessLoader loads the business named by a route's :businessId parameter.
type BusinessLoader func(ctx context.Context, id primitive.ObjectID) (*models.Business, error)

// LoadActor returns a middleware that builds the request's Actor.
// It must run after Auth.
func LoadActor(loader authz.ActorLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserObjectID(c)
		if !ok {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		actor, err := loader.LoadActor(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrAccountNotFound) {
				response.Unauthorized(c, "account no longer exists")
				c.Abort()
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load actor")
			response.InternalError(c)
			c.Abort()
			return
		}

		c.Set(ActorKey, actor)
		if businessID, ok := actor.CurrentBusinessID(); ok {
			setBusinessID(c, businessID)
		}

		c.Next()
	}
}

// Authorize returns a middleware that checks a type action of policy in the
// actor's current business.
func Authorize(policy *authz.Policy, action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		denied := msgInsufficientPermissions
		if !actor.HasCurrentBusiness() {
			denied = apperrors.ErrNoCurrentBusiness.Error()
		}

		allowed, err := policy.Allow(actor, action, nil)
		if !decide(c, actor, policy.Name(), action, allowed, err, denied) {
			return
		}

		businessID, _ := actor.CurrentBusinessID()
		setBusinessID(c, businessID)
		c.Next()
	}
}

// AuthorizeResource returns a middleware that loads the resource named by the
// :id parameter and checks an instance action of policy against it. The
// loaded resource is stored for the handler.
func AuthorizeResource(policy *authz.Policy, action authz.Action, load ResourceLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			response.BadRequest(c, "invalid id format")
			c.Abort()
			return
		}

		res, err := load(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err, "Failed to load resource")
			return
		}

		allowed, err := policy.Allow(actor, action, res)
		if !decide(c, actor, policy.Name(), action, allowed, err, msgInsufficientPermissions) {
			return
		}

		c.Set(ResourceKey, res)
		setBusinessID(c, res.GetBusinessID())
		c.Next()
	}
}

// AuthorizeCategory returns a middleware that checks the view action of the
// report category named by the request. It runs after the route's own gate.
func AuthorizeCategory(policy *authz.Policy, actions map[string]authz.Action, category CategoryExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		name, err := category(c)
		if err != nil {
			response.BadRequest(c, err.Error())
			c.Abort()
			return
		}

		action, known := actions[name]
		if !known {
			response.BadRequest(c, apperrors.ErrUnknownCategory.Error())
			c.Abort()
			return
		}

		allowed, err := policy.Allow(actor, action, nil)
		if !decide(c, actor, policy.Name(), action, allowed, err, msgInsufficientPermissions) {
			return
		}

		c.Next()
	}
}

// ReadableCategories returns a middleware that stores the report categories
// whose view action the actor passes, sorted by name.
func ReadableCategories(policy *authz.Policy, actions map[string]authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		categories := make([]string, 0, len(actions))
		for name, action := range actions {
			allowed, err := policy.Allow(actor, action, nil)
			if err != nil {
				abortWithError(c, err, "Authorization check failed")
				return
			}
			if allowed {
				categories = append(categories, name)
			}
		}
		sort.Strings(categories)

		c.Set(CategoriesKey, categories)
		c.Next()
	}
}

// AuthorizeBusiness returns a middleware that loads the business named by the
// :businessId parameter and checks action of the business policy against it.
func AuthorizeBusiness(policy *authz.BusinessPolicy, action authz.Action, load BusinessLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("businessId"))
		if err != nil {
			response.BadRequest(c, "invalid business id format")
			c.Abort()
			return
		}

		business, err := load(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err, "Failed to load business")
			return
		}

		allowed, err := policy.Allow(actor, action, business)
		if !decide(c, actor, "business", action, allowed, err, msgInsufficientPermissions) {
			return
		}

		c.Set(BusinessKey, business)
		setBusinessID(c, business.ID)
		c.Next()
	}
}

// AuthorizeBusinessCreate returns a middleware that checks whether the actor's
// subscription allows another business.
func AuthorizeBusinessCreate(policy *authz.BusinessPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		allowed, err := policy.Create(c.Request.Context(), actor)
		if err != nil {
			abortWithError(c, err, "Authorization check failed")
			return
		}
		if !allowed {
			denyEntry(c, actor, "business", authz.ActionCreate).Debug("Business limit reached")
			response.Forbidden(c, apperrors.ErrBusinessLimitReached.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthorizePlatform returns a middleware that checks a platform-wide action.
func AuthorizePlatform(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}

		allowed, err := authz.PlatformAllow(actor, action)
		if !decide(c, actor, "platform", action, allowed, err, msgInsufficientPermissions) {
			return
		}

		c.Next()
	}
}

// GetActor retrieves the Actor from the context.
func GetActor(c *gin.Context) (*authz.Actor, bool) {
	v, exists := c.Get(ActorKey)
	if !exists {
		return nil, false
	}
	actor, ok := v.(*authz.Actor)
	return actor, ok && actor != nil
}

// GetBusinessID retrieves the business the request was authorized in.
func GetBusinessID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get(BusinessIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok && !id.IsZero()
}

// GetBusiness retrieves the business loaded by AuthorizeBusiness.
func GetBusiness(c *gin.Context) (*models.Business, bool) {
	v, exists := c.Get(BusinessKey)
	if !exists {
		return nil, false
	}
	business, ok := v.(*models.Business)
	return business, ok
}

// GetRecord retrieves the record loaded by AuthorizeResource.
func GetRecord(c *gin.Context) (*models.Record, bool) {
	v, exists := c.Get(ResourceKey)
	if !exists {
		return nil, false
	}
	record, ok := v.(*models.Record)
	return record, ok
}

// GetGeneratedReport retrieves the generated report loaded by AuthorizeResource.
func GetGeneratedReport(c *gin.Context) (*models.GeneratedReport, bool) {
	v, exists := c.Get(ResourceKey)
	if !exists {
		return nil, false
	}
	report, ok := v.(*models.GeneratedReport)
	return report, ok
}

// GetReadableCategories retrieves the categories stored by ReadableCategories.
func GetReadableCategories(c *gin.Context) ([]string, bool) {
	v, exists := c.Get(CategoriesKey)
	if !exists {
		return nil, false
	}
	categories, ok := v.([]string)
	return categories, ok
}

func requireActor(c *gin.Context) (*authz.Actor, bool) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		c.Abort()
		return nil, false
	}
	return actor, true
}

// decide writes the response for a failed or denied check and reports
// whether the request may continue.
func decide(c *gin.Context, actor *authz.Actor, subject string, action authz.Action, allowed bool, err error, deniedMessage string) bool {
	if err != nil {
		abortWithError(c, err, "Authorization check failed")
		return false
	}
	if !allowed {
		denyEntry(c, actor, subject, action).Debug("Authorization denied")
		response.Forbidden(c, deniedMessage)
		c.Abort()
		return false
	}
	return true
}

func denyEntry(c *gin.Context, actor *authz.Actor, subject string, action authz.Action) *logrus.Entry {
	fields := logrus.Fields{
		"userId":   actor.ID().Hex(),
		"resource": subject,
		"action":   string(action),
	}
	if businessID, ok := actor.CurrentBusinessID(); ok {
		fields["businessId"] = businessID.Hex()
	}
	return logger.WithContext(c.Request.Context()).WithFields(fields)
}

func abortWithError(c *gin.Context, err error, msg string) {
	if apperrors.StatusCode(err) >= 500 {
		logger.WithContext(c.Request.Context()).WithError(err).Error(msg)
	}
	response.FromError(c, err)
	c.Abort()
}

func setBusinessID(c *gin.Context, businessID primitive.ObjectID) {
	c.Set(BusinessIDKey, businessID)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.BusinessIDKey, businessID.Hex()))
}
