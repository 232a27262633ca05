package handler

// Response is the uniform API envelope.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func ok(data interface{}) Response {
	return Response{Status: "success", Data: data}
}

func okMessage(message string, data interface{}) Response {
	return Response{Status: "success", Message: message, Data: data}
}

func fail(message string) Response {
	return Response{Status: "error", Message: message}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Industry  *string `json:"industry"`
	Interests *string `json:"interests"`
}

type savePostRequest struct {
	Content  string `json:"content"`
	Hashtags string `json:"hashtags"`
	// Layout 2006-01-02; empty means today.
	ScheduleDate string `json:"schedule_date"`
}

type generateResponse struct {
	Content  string `json:"content"`
	Hashtags string `json:"hashtags"`
	Source   string `json:"source"`
	Warning  string `json:"warning,omitempty"`
}
