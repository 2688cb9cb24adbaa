package services

// Services defined in this package:
// - AuthService: Handles authentication and user registration
// - UniversityService: Handles operations related to universities
// - CourseService: Handles operations related to courses
// - TopicService: Handles operations related to course content topics
// - RuleService: Handles operations related to transfer rules
// - EvaluationService: The transfer evaluation engine
