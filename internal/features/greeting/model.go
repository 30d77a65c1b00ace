package greeting

// HelloWorldBean is the JSON greeting payload
// @Description Greeting wrapped in an object
type HelloWorldBean struct {
	Message string `json:"message" example:"Hello-World-Bean"`
}
