package common

// DateLayout is the wire and input format for employment dates.
const DateLayout = "2006-01-02"
