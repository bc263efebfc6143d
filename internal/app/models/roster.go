package models

// RosterRecord is a doctor or drug document. Its fields are owned by the
// admin client and stored as received, plus the generated _id.
type RosterRecord map[string]interface{}
