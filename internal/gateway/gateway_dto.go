package gateway

// Wire shapes of the record store. List responses are decoded into these
// typed records and mapped explicitly into domain values by the services;
// raw payloads are never reshaped by assertion.

type StudentRecord struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Grade     string `json:"grade"`
	Phone     string `json:"phone"`
	Class     string `json:"class"`
	Password  string `json:"password"` // bcrypt hash, never surfaced downstream
}

type ReasonRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type OutingRegistration struct {
	StudentID   string `json:"studentId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ReturnTime  string `json:"returnTime"`
	Reason1     string `json:"reason1"`
	Reason1Name string `json:"reason1Name"`
	Reason2     string `json:"reason2"`
	Reason2Name string `json:"reason2Name"`
	OtherReason string `json:"otherReason"`
}

type OutingListItem struct {
	Seq        int    `json:"seq"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Reason     string `json:"reason"`
	ReturnTime string `json:"returnTime,omitempty"`
}

type OutingReturn struct {
	Date       string `json:"date"`
	Seq        int    `json:"seq"`
	ReturnType string `json:"returnType"`
	Note       string `json:"note"`
}

type OutingReturnResult struct {
	Message string `json:"message"`
}

type StayRegistration struct {
	StudentID   string `json:"studentId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ReturnDate  string `json:"returnDate"`
	ReturnTime  string `json:"returnTime"`
	Reason      string `json:"reason"`
	OtherReason string `json:"otherReason"`
}

type StayListItem struct {
	Seq          int    `json:"seq"`
	SleepOutDate string `json:"sleepOutDate"`
	ReturnDate   string `json:"returnDate"`
	Reason       string `json:"reason"`
}

type StayReturn struct {
	SleepOutDate string `json:"sleepOutDate"`
	Seq          int    `json:"seq"`
	ReturnType   string `json:"returnType"`
	Note         string `json:"note"`
}
