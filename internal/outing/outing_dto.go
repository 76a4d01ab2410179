package outing

type RegisterOutingRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	ReturnTime  string `json:"returnTime"`
	Reason1     string `json:"reason1"`
	Reason2     string `json:"reason2"`
	OtherReason string `json:"otherReason"`
}

type ReturnOutingRequest struct {
	ID         string `json:"id" binding:"required"`
	ReturnType string `json:"returnType" binding:"required"`
	Note       string `json:"note"`
}

type OutingResponse struct {
	ID               string `json:"id"`
	StudentID        string `json:"studentId"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ReturnTime       string `json:"returnTime"`
	Reason1          string `json:"reason1"`
	Reason1Name      string `json:"reason1Name"`
	Reason2          string `json:"reason2,omitempty"`
	Reason2Name      string `json:"reason2Name,omitempty"`
	OtherReason      string `json:"otherReason,omitempty"`
	Status           string `json:"status"`
	ActualReturnTime string `json:"actualReturnTime,omitempty"`
	Seq              int    `json:"seq"`
}
