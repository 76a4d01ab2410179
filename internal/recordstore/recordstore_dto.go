package recordstore

// Responses are bare JSON, not the envelope: the leave desk gateway decodes
// these shapes directly.

type StudentResponse struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Grade     string `json:"grade"`
	Phone     string `json:"phone"`
	Class     string `json:"class"`
	Password  string `json:"password"`
}

type ReasonResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type RegisterOutingRequest struct {
	StudentID   string `json:"studentId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ReturnTime  string `json:"returnTime" binding:"required"`
	Reason1     string `json:"reason1" binding:"required"`
	Reason1Name string `json:"reason1Name"`
	Reason2     string `json:"reason2"`
	Reason2Name string `json:"reason2Name"`
	OtherReason string `json:"otherReason"`
}

type OutingListRow struct {
	Seq        int    `json:"seq"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Reason     string `json:"reason"`
	ReturnTime string `json:"returnTime,omitempty"`
}

type ReturnOutingRequest struct {
	Date       string `json:"date" binding:"required"`
	Seq        int    `json:"seq" binding:"required"`
	ReturnType string `json:"returnType" binding:"required"`
	Note       string `json:"note"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterStayRequest struct {
	StudentID   string `json:"studentId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ReturnDate  string `json:"returnDate" binding:"required"`
	ReturnTime  string `json:"returnTime" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	OtherReason string `json:"otherReason"`
}

type StayListRow struct {
	Seq          int    `json:"seq"`
	SleepOutDate string `json:"sleepOutDate"`
	ReturnDate   string `json:"returnDate"`
	Reason       string `json:"reason"`
}

type ReturnStayRequest struct {
	SleepOutDate string `json:"sleepOutDate" binding:"required"`
	Seq          int    `json:"seq" binding:"required"`
	ReturnType   string `json:"returnType" binding:"required"`
	Note         string `json:"note"`
}
