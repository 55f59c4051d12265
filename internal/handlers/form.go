package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// reportFormHTML is the public submission page. It is a plain client of the
// POST /report contract; checkbox values are "true" so they bind as booleans.
const reportFormHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Report a Disaster</title>
</head>
<body>
  <h1>Report a Disaster</h1>
  <form action="/report" method="post">
    <p><label>Title <input type="text" name="title" required></label></p>
    <p><label>Description <textarea name="description" required></textarea></label></p>
    <p><label>Date and time <input type="text" name="date_time" placeholder="YYYY-MM-DD HH:MM"></label></p>
    <fieldset>
      <legend>Categories</legend>
      <label><input type="checkbox" name="earthquake" value="true"> Earthquake</label>
      <label><input type="checkbox" name="flash_flood" value="true"> Flash Flood</label>
      <label><input type="checkbox" name="forest_fire" value="true"> Forest Fire</label>
      <label><input type="checkbox" name="accident" value="true"> Accident</label>
      <label><input type="checkbox" name="others" value="true"> Others</label>
    </fieldset>
    <p><label>Location <input type="text" name="location"></label></p>
    <p><label>Nearest landmark <input type="text" name="location_landmark"></label></p>
    <p><label>Your name <input type="text" name="full_name"></label></p>
    <p><label>Email <input type="email" name="email"></label></p>
    <p><label>Phone <input type="text" name="phone"></label></p>
    <p><label>News link <input type="url" name="news_link"></label></p>
    <p><label>Photo or video URL <input type="url" name="media_url"></label></p>
    <p><button type="submit">Submit report</button></p>
  </form>
</body>
</html>
`

// Form serves the HTML report-submission form.
func Form(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(reportFormHTML))
}
