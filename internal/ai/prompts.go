package ai

import "fmt"

// RoadmapPrompt asks for a structured learning plan for the career goal.
func RoadmapPrompt(careerGoal string) string {
	return fmt.Sprintf("Generate a detailed learning roadmap for someone who wants to become a %s. Include specific skills, resources, and timeline. Format the response in markdown with clear sections.", careerGoal)
}

// MentorPrompt frames a single mentor question. An unset career goal falls
// back to "a professional".
func MentorPrompt(careerGoal, message string) string {
	if careerGoal == "" {
		careerGoal = "a professional"
	}
	return fmt.Sprintf("As a career mentor for someone who wants to become a %s, respond to the following question in a helpful and encouraging way: %s", careerGoal, message)
}
