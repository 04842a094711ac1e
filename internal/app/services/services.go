package services

// Services defined in this package:
// - CourseService: lists programs, filters course sections and groups them by course
