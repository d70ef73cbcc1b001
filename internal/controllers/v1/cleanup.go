package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Delete all data of the authenticated user
// @Description	Permanently deletes all categories, transactions and budgets of the authenticated user. The user account is kept.
// @Tags			v1
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			confirm	query	string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-my-data'"
// @Router			/v1 [delete]
func DeleteAll(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-my-data" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	err = models.DeleteUserData(models.DB, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
