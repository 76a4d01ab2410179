package stay

type RegisterStayRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	ReturnDate  string `json:"returnDate"`
	ReturnTime  string `json:"returnTime"`
	Reason      string `json:"reason"`
	OtherReason string `json:"otherReason"`
}

type ReturnStayRequest struct {
	ID         string `json:"id" binding:"required"`
	ReturnType string `json:"returnType" binding:"required"`
	Note       string `json:"note"`
}

type StayResponse struct {
	ID               string `json:"id"`
	StudentID        string `json:"studentId"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ReturnDate       string `json:"returnDate"`
	ReturnTime       string `json:"returnTime"`
	Reason           string `json:"reason"`
	ReasonName       string `json:"reasonName"`
	OtherReason      string `json:"otherReason,omitempty"`
	Status           string `json:"status"`
	ActualReturnDate string `json:"actualReturnDate,omitempty"`
	ActualReturnTime string `json:"actualReturnTime,omitempty"`
	Note             string `json:"note,omitempty"`
	Seq              int    `json:"seq"`
}
