package main

// @title           Sistema PDV API
// @version         1.0
// @description     API para o sistema de ponto de venda e gestão de pequenos comércios

// @contact.name   Suporte
// @contact.email  suporte@sistemapdv.com.br

// @host      localhost:8080
// @BasePath  /api/v1
