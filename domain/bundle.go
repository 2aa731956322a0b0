package domain

// Bundle groups courses for discounted purchase.
type Bundle struct {
	Record
	Name            string   `json:"name" dynamodbav:"name"`
	CourseIDs       []string `json:"courseIds" dynamodbav:"courseIds"`
	Price           float64  `json:"price,omitempty" dynamodbav:"price,omitempty"`
	DiscountPercent float64  `json:"discountPercent,omitempty" dynamodbav:"discountPercent,omitempty"`
	ValidityDays    int      `json:"validityDays,omitempty" dynamodbav:"validityDays,omitempty"`
}
