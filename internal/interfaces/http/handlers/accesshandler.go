package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubgate/internal/application/access/usecases"
	"clubgate/internal/interfaces/dto"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

type AccessHandler struct {
	requestAccess AccessRequester
	requestManual ManualRequester
	redeemToken   TokenRedeemer
	logger        logger.Interface
}

func NewAccessHandler(
	requestAccess AccessRequester,
	requestManual ManualRequester,
	redeemToken TokenRedeemer,
	log logger.Interface,
) *AccessHandler {
	return &AccessHandler{
		requestAccess: requestAccess,
		requestManual: requestManual,
		redeemToken:   redeemToken,
		logger:        log,
	}
}

// RequestAccess handles the university-email verification form.
func (h *AccessHandler) RequestAccess(c *gin.Context) {
	var req dto.VerifyAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for access request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request format"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RequestAccessCommand{
		Email:          req.Email,
		Phone:          req.Phone,
		ChallengeToken: req.ChallengeToken,
		Honeypot:       req.Website,
		ClientIP:       c.ClientIP(),
	}

	if err := h.requestAccess.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		"Check your inbox. We have emailed you a single-use join link.", nil)
}

// RequestManualAccess handles the committee-review intake form.
func (h *AccessHandler) RequestManualAccess(c *gin.Context) {
	var req dto.ManualAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for manual access request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request format"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RequestManualAccessCommand{
		Email:          req.Email,
		Phone:          req.Phone,
		Note:           req.Note,
		ChallengeToken: req.ChallengeToken,
		Honeypot:       req.Website,
		ClientIP:       c.ClientIP(),
	}

	if err := h.requestManual.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil,
		"Your request has been received. The committee will review it shortly.")
}

// Join redeems a token lifted out of the /join#<token> fragment.
func (h *AccessHandler) Join(c *gin.Context) {
	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request format"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.redeemToken.Execute(c.Request.Context(), usecases.RedeemTokenCommand{Token: req.Token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Welcome aboard", dto.JoinResponse{
		CommunityURL: result.CommunityURL,
	})
}

// JoinPage serves the static page that reads the token out of the URL
// fragment and posts it to the redemption endpoint. Fragments never reach
// the server, so tokens stay out of request logs and proxies.
func (h *AccessHandler) JoinPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(joinPageHTML))
}

const joinPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<title>Join</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 32rem; margin: 4rem auto; padding: 0 1rem; }
.error { color: #b00020; }
</style>
</head>
<body>
<h1>Joining the community</h1>
<p id="status">Checking your link&hellip;</p>
<script>
(function () {
  var status = document.getElementById("status");
  var token = window.location.hash.replace(/^#/, "");
  if (!token) {
    status.textContent = "This link is invalid or has expired.";
    status.className = "error";
    return;
  }
  fetch("/api/join", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({ token: token })
  }).then(function (res) { return res.json(); }).then(function (body) {
    if (body.success && body.data && body.data.community_url) {
      status.textContent = "Link verified. Redirecting you now…";
      window.location.replace(body.data.community_url);
    } else {
      status.textContent = (body.error && body.error.message) || "This link is invalid or has expired.";
      status.className = "error";
    }
  }).catch(function () {
    status.textContent = "Something went wrong, please try again.";
    status.className = "error";
  });
})();
</script>
</body>
</html>
`
